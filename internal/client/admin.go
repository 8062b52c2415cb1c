package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/Dirk1989/Ideal/internal/domain"
)

// File is an image attached to an admin write.
type File struct {
	Field string
	Name  string
	// ContentType defaults to the type implied by Name's extension.
	ContentType string
	Data        io.Reader
}

// Form is the body of an admin write: text fields plus optional files.
type Form struct {
	Values url.Values
	Files  []File
}

// encode renders f as multipart when it carries files and as a urlencoded
// form otherwise.
func (f Form) encode() (io.Reader, string, error) {
	if len(f.Files) == 0 {
		return bytes.NewBufferString(f.Values.Encode()), "application/x-www-form-urlencoded", nil
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	names := make([]string, 0, len(f.Values))
	for name := range f.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range f.Values[name] {
			if err := w.WriteField(name, v); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
			}
		}
	}

	for _, file := range f.Files {
		ct := file.ContentType
		if ct == "" {
			ct = mime.TypeByExtension(filepath.Ext(file.Name))
		}
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, filepath.Base(file.Name)))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %s: %w", file.Name, err)
		}
		if _, err := io.Copy(part, file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

// Admin calls the token-protected endpoints. Login must succeed first.
type Admin struct {
	*Client

	token     string
	expiresAt time.Time
}

// NewAdmin wraps c with admin credentials.
func NewAdmin(c *Client) *Admin {
	return &Admin{Client: c}
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges the admin password for a token kept by a.
func (a *Admin) Login(ctx context.Context, password string) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("failed to marshal login: %w", err)
	}

	var resp loginResponse
	if err := a.do(ctx, http.MethodPost, "/api/admin/login", "", bytes.NewReader(body), "application/json", &resp); err != nil {
		return err
	}
	a.token, a.expiresAt = resp.Token, resp.ExpiresAt
	return nil
}

// Token returns the current token, empty before Login.
func (a *Admin) Token() string { return a.token }

// SetToken reuses a token obtained earlier.
func (a *Admin) SetToken(token string) { a.token = token }

// ExpiresAt returns when the token from the last Login expires.
func (a *Admin) ExpiresAt() time.Time { return a.expiresAt }

// Logout revokes the token.
func (a *Admin) Logout(ctx context.Context) error {
	if err := a.do(ctx, http.MethodPost, "/api/admin/logout", a.token, nil, "", nil); err != nil {
		return err
	}
	a.token = ""
	return nil
}

type carResponse struct {
	Car domain.Vehicle `json:"car"`
}

func (a *Admin) CreateCar(ctx context.Context, form Form) (domain.Vehicle, error) {
	var resp carResponse
	err := a.send(ctx, http.MethodPost, "/api/admin/cars", form, &resp)
	return resp.Car, err
}

// UpdateCar sends only the fields present in form. Attached images replace
// the current ones.
func (a *Admin) UpdateCar(ctx context.Context, id int64, form Form) (domain.Vehicle, error) {
	var resp carResponse
	err := a.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/cars/%d", id), form, &resp)
	return resp.Car, err
}

func (a *Admin) DeleteCar(ctx context.Context, id int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/cars/%d", id), a.token, nil, "", nil)
}

type postResponse struct {
	Post domain.BlogPost `json:"post"`
}

func (a *Admin) CreateBlogPost(ctx context.Context, form Form) (domain.BlogPost, error) {
	var resp postResponse
	err := a.send(ctx, http.MethodPost, "/api/admin/blog", form, &resp)
	return resp.Post, err
}

func (a *Admin) UpdateBlogPost(ctx context.Context, id int64, form Form) (domain.BlogPost, error) {
	var resp postResponse
	err := a.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/blog/%d", id), form, &resp)
	return resp.Post, err
}

func (a *Admin) DeleteBlogPost(ctx context.Context, id int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/blog/%d", id), a.token, nil, "", nil)
}

type statsResponse struct {
	Stats domain.Stats `json:"stats"`
}

// Stats fetches the dashboard figures.
func (a *Admin) Stats(ctx context.Context) (domain.Stats, error) {
	var resp statsResponse
	err := a.do(ctx, http.MethodGet, "/api/admin/stats", a.token, nil, "", &resp)
	return resp.Stats, err
}

func (a *Admin) send(ctx context.Context, method, path string, form Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return a.do(ctx, method, path, a.token, body, contentType, out)
}
