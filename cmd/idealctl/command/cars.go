package command

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dirk1989/Ideal/internal/client"
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List and manage car listings",
}

var listFilter client.Filter

var carsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cars, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cars, err := newClient().ListCars(cmd.Context())
		if err != nil {
			return err
		}
		writeListings(cmd.OutOrStdout(), listFilter.Apply(cars))
		return nil
	},
}

// carFields are the form fields accepted by add and update.
var carFields = []string{
	"make", "model", "year", "price", "description", "mileage", "transmission",
	"fuel", "engine", "color", "doors", "seats", "condition", "category",
	"featured", "features", "dealerId",
}

var carImages []string

var carsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a car listing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		admin, err := newAdmin()
		if err != nil {
			return err
		}
		form, closeFiles, err := carForm(cmd)
		if err != nil {
			return err
		}
		defer closeFiles()

		car, err := admin.CreateCar(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created car %d: %s\n", car.ID, client.NewListing(car).Title())
		return nil
	},
}

var carsUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update the given fields of a car listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		admin, err := newAdmin()
		if err != nil {
			return err
		}
		form, closeFiles, err := carForm(cmd)
		if err != nil {
			return err
		}
		defer closeFiles()

		car, err := admin.UpdateCar(cmd.Context(), id, form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated car %d: %s\n", car.ID, client.NewListing(car).Title())
		return nil
	},
}

var carsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a car listing and its images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		admin, err := newAdmin()
		if err != nil {
			return err
		}
		if err := admin.DeleteCar(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted car %d\n", id)
		return nil
	},
}

// carForm collects the flags the user actually set, so updates stay
// partial.
func carForm(cmd *cobra.Command) (client.Form, func(), error) {
	form := client.Form{Values: url.Values{}}
	for _, name := range carFields {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			form.Values.Set(name, v)
		}
	}

	var files []*os.File
	closeFiles := func() {
		for _, f := range files {
			f.Close()
		}
	}
	for _, path := range carImages {
		f, err := os.Open(path)
		if err != nil {
			closeFiles()
			return client.Form{}, nil, fmt.Errorf("open image: %w", err)
		}
		files = append(files, f)
		form.Files = append(form.Files, client.File{Field: "images", Name: path, Data: f})
	}
	return form, closeFiles, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func writeListings(w io.Writer, cars []client.Listing) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCAR\tPRICE\tTRANSMISSION\tFUEL\tIMAGES")
	for _, c := range cars {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", c.ID, c.Title(), c.PriceZAR, c.Transmission, c.Fuel, len(c.Images))
	}
	tw.Flush()
	if len(cars) == 0 {
		fmt.Fprintln(w, "No vehicles match your search.")
	}
}

func init() {
	f := carsListCmd.Flags()
	f.StringVar(&listFilter.Make, "make", "", "make contains")
	f.StringVar(&listFilter.Model, "model", "", "model contains")
	f.Float64Var(&listFilter.MaxPrice, "max-price", 0, "maximum price in rand")
	f.IntVar(&listFilter.MinYear, "min-year", 0, "minimum year")
	f.StringVar(&listFilter.Transmission, "transmission", "", "exact transmission")
	f.StringVar(&listFilter.Fuel, "fuel", "", "exact fuel type")

	for _, cmd := range []*cobra.Command{carsAddCmd, carsUpdateCmd} {
		for _, name := range carFields {
			cmd.Flags().String(name, "", strings.ReplaceAll(name, "Id", " id"))
		}
		cmd.Flags().StringSliceVar(&carImages, "image", nil, "image file to upload (repeatable)")
	}

	carsCmd.AddCommand(carsListCmd, carsAddCmd, carsUpdateCmd, carsDeleteCmd)
	rootCmd.AddCommand(carsCmd)
}
