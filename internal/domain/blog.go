package domain

import "time"

// DateFormat is the layout of BlogPost.Date.
const DateFormat = "2006-01-02"

// Defaults applied to blog fields that were not submitted on create.
const (
	DefaultReadTime     = "5 min"
	DefaultAuthor       = "DirkL"
	DefaultBlogCategory = "General"
	DefaultBlogImage    = "https://images.unsplash.com/photo-1493238792000-8113da705763?w=800"
)

// BlogPost represents an article on the dealership blog.
type BlogPost struct {
	ID          int64    `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Excerpt     string   `json:"excerpt" yaml:"excerpt"`
	FullContent string   `json:"fullContent" yaml:"fullContent"`
	Image       string   `json:"image" yaml:"image"`
	Date        string   `json:"date" yaml:"date"`
	ReadTime    string   `json:"readTime" yaml:"readTime"`
	Author      string   `json:"author" yaml:"author"`
	Category    string   `json:"category" yaml:"category"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// RecordID implements the repository record contract.
func (p BlogPost) RecordID() int64 { return p.ID }

// Clone returns a copy of p that shares no slices with it.
func (p BlogPost) Clone() BlogPost {
	p.Tags = cloneStrings(p.Tags)
	return p
}

// BlogPatch is a validated set of blog post fields.
type BlogPatch struct {
	Title       Optional[string]
	Excerpt     Optional[string]
	FullContent Optional[string]
	ReadTime    Optional[string]
	Author      Optional[string]
	Category    Optional[string]
	Tags        Optional[[]string]
}

// NewBlogPost builds a post from p. The body falls back to the excerpt and
// the cover to the stock image.
func NewBlogPost(id int64, p BlogPatch, image string, now time.Time) BlogPost {
	excerpt := p.Excerpt.Or("")
	if image == "" {
		image = DefaultBlogImage
	}
	body := p.FullContent.Or("")
	if body == "" {
		body = excerpt
	}
	return BlogPost{
		ID:          id,
		Title:       p.Title.Or(""),
		Excerpt:     excerpt,
		FullContent: body,
		Image:       image,
		Date:        now.Format(DateFormat),
		ReadTime:    p.ReadTime.Or(DefaultReadTime),
		Author:      p.Author.Or(DefaultAuthor),
		Category:    p.Category.Or(DefaultBlogCategory),
		Tags:        cloneStrings(p.Tags.Or([]string{})),
	}
}

// Merge returns post with every supplied field of p applied.
func (post BlogPost) Merge(p BlogPatch) BlogPost {
	out := post.Clone()
	p.Title.Apply(&out.Title)
	p.Excerpt.Apply(&out.Excerpt)
	p.FullContent.Apply(&out.FullContent)
	p.ReadTime.Apply(&out.ReadTime)
	p.Author.Apply(&out.Author)
	p.Category.Apply(&out.Category)
	if tags, ok := p.Tags.Get(); ok {
		out.Tags = cloneStrings(tags)
	}
	return out
}
