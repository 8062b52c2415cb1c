package command

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dirk1989/Ideal/internal/client"
	"github.com/Dirk1989/Ideal/internal/domain"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Read blog posts",
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blog posts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		posts, err := newClient().ListBlog(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tTITLE")
		for _, p := range posts {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Date, p.Category, p.Title)
		}
		return tw.Flush()
	},
}

var contactMsg domain.ContactMessage

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the dealership",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ref, err := newClient().SubmitContact(cmd.Context(), contactMsg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Thank you! Your reference is %s.\n", ref)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain an admin token",
	Long: `Reads the admin password from standard input and prints a token.
Export it as IDEALCAR_TOKEN for the admin commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("read password: %w", err)
		}

		admin := client.NewAdmin(newClient())
		if err := admin.Login(cmd.Context(), strings.TrimRight(password, "\r\n")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), admin.Token())
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", admin.ExpiresAt().Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard figures",
	RunE: func(cmd *cobra.Command, _ []string) error {
		admin, err := newAdmin()
		if err != nil {
			return err
		}
		s, err := admin.Stats(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cars:           %d\n", s.TotalCars)
		fmt.Fprintf(out, "Images:         %d\n", s.TotalImages)
		fmt.Fprintf(out, "Average price:  %s\n", client.FormatZAR(float64(s.AveragePrice)))
		fmt.Fprintf(out, "Blog posts:     %d\n", s.TotalPosts)
		fmt.Fprintf(out, "Active dealers: %d\n", s.ActiveDealers)
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactMsg.Name, "name", "", "your name")
	f.StringVar(&contactMsg.Email, "email", "", "your email address")
	f.StringVar(&contactMsg.Phone, "phone", "", "South African phone number")
	f.StringVar(&contactMsg.Subject, "subject", "", "subject")
	f.StringVar(&contactMsg.Message, "message", "", "message")

	blogCmd.AddCommand(blogListCmd)
	rootCmd.AddCommand(blogCmd, contactCmd, loginCmd, statsCmd)
}
