package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sainaif/animalsys/internal/client/models"
	"github.com/sainaif/animalsys/internal/client/services"
)

const defaultPageSize = 20

// parseListArgs reads the flags shared by the list commands.
func parseListArgs(cmd string, args []string) (services.ListParams, error) {
	p := services.ListParams{}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&p.Search, "search", "", "free-text search")
	fs.StringVar(&p.Status, "status", "", "status filter")
	fs.IntVar(&p.Limit, "limit", defaultPageSize, "page size")
	fs.IntVar(&p.Offset, "offset", 0, "number of records to skip")

	if err := fs.Parse(args); err != nil || fs.NArg() > 0 || p.Limit < 0 || p.Offset < 0 {
		return p, usage(cmd + " [-search text] [-status s] [-limit n] [-offset n]")
	}
	return p, nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) footer(total, offset, count int) {
	if count == 0 {
		fmt.Fprintln(a.out, "No results.")
		return
	}
	fmt.Fprintf(a.out, "Showing %d-%d of %d\n", offset+1, offset+count, total)
}

func (a *App) Animals(ctx context.Context, args []string) error {
	p, err := parseListArgs("animals", args)
	if err != nil {
		return err
	}
	if err := a.require(ctx, public); err != nil {
		return err
	}

	page, err := a.animals.List(ctx, p)
	if err != nil {
		return err
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tBREED\tAGE\tSTATUS")
	for _, an := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", an.ID, an.Name, an.Species, an.Breed, an.Age(), an.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.footer(page.Total, page.Offset, len(page.Data))
	return nil
}

func (a *App) Animal(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("animal <id>")
	}
	if err := a.require(ctx, public); err != nil {
		return err
	}

	an, err := a.animals.Get(ctx, args[0])
	if err != nil {
		return err
	}

	tw := a.table()
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("ID", an.ID)
	row("Name", an.Name)
	row("Species", an.Species)
	row("Breed", an.Breed)
	row("Sex", an.Sex)
	row("Age", an.Age())
	row("Status", string(an.Status))
	row("Microchip", an.MicrochipID)
	if an.AdoptionFee > 0 {
		row("Adoption fee", fmt.Sprintf("%.2f", an.AdoptionFee))
	}
	row("Description", an.Description)
	if len(an.Photos) > 0 {
		row("Photos", strings.Join(an.Photos, ", "))
	}
	return tw.Flush()
}

func (a *App) Adoptions(ctx context.Context, args []string) error {
	p, err := parseListArgs("adoptions", args)
	if err != nil {
		return err
	}
	if err := a.require(ctx, authenticated); err != nil {
		return err
	}

	page, err := a.adoptions.List(ctx, p)
	if err != nil {
		return err
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tANIMAL\tAPPLICANT\tEMAIL\tSTATUS")
	for _, ad := range page.Data {
		applicant := strings.TrimSpace(ad.ApplicantFirstName + " " + ad.ApplicantLastName)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ad.ID, ad.AnimalID, applicant, ad.Email, ad.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.footer(page.Total, page.Offset, len(page.Data))
	return nil
}

func (a *App) Donors(ctx context.Context, args []string) error {
	p, err := parseListArgs("donors", args)
	if err != nil {
		return err
	}
	if err := a.require(ctx, adminOnly); err != nil {
		return err
	}

	page, err := a.donors.List(ctx, p)
	if err != nil {
		return err
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tDONATIONS\tTOTAL")
	for _, d := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\n", d.ID, d.DisplayName(), d.Type, d.DonationCount, d.TotalDonated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.footer(page.Total, page.Offset, len(page.Data))
	return nil
}

func (a *App) Volunteers(ctx context.Context, args []string) error {
	p, err := parseListArgs("volunteers", args)
	if err != nil {
		return err
	}
	if err := a.require(ctx, authenticated); err != nil {
		return err
	}

	page, err := a.volunteers.List(ctx, p)
	if err != nil {
		return err
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tHOURS")
	for _, v := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\n", v.ID, v.FullName(), v.Email, v.Status, v.TotalHours)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.footer(page.Total, page.Offset, len(page.Data))
	return nil
}

func (a *App) Inventory(ctx context.Context, args []string) error {
	p, err := parseListArgs("inventory", args)
	if err != nil {
		return err
	}
	if err := a.require(ctx, staffOnly); err != nil {
		return err
	}

	page, err := a.inventory.List(ctx, p)
	if err != nil {
		return err
	}
	if err := a.printItems(page.Data); err != nil {
		return err
	}
	a.footer(page.Total, page.Offset, len(page.Data))
	return nil
}

func (a *App) LowStock(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usage("low-stock")
	}
	if err := a.require(ctx, staffOnly); err != nil {
		return err
	}

	items, err := a.inventory.LowStock(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "All items are sufficiently stocked.")
		return nil
	}
	return a.printItems(items)
}

func (a *App) printItems(items []models.InventoryItem) error {
	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tIN STOCK\tMIN\tUNIT")
	for _, it := range items {
		mark := ""
		if it.LowStock() {
			mark = " !"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g%s\t%g\t%s\n", it.ID, it.Name, it.Category, it.QuantityInStock, mark, it.MinimumQuantity, it.Unit)
	}
	return tw.Flush()
}

func (a *App) VetUpcoming(ctx context.Context, args []string) error {
	days := 0
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return usage("vet-upcoming [days]")
		}
		days = n
	default:
		return usage("vet-upcoming [days]")
	}
	if err := a.require(ctx, staffOnly); err != nil {
		return err
	}

	visits, err := a.veterinary.Upcoming(ctx, days)
	if err != nil {
		return err
	}
	if len(visits) == 0 {
		fmt.Fprintln(a.out, "No upcoming visits.")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "DATE\tANIMAL\tTYPE\tVETERINARIAN\tREASON")
	for _, v := range visits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.VisitDate.Local().Format(time.DateTime), v.AnimalID, v.VisitType, v.VeterinarianName, v.Reason)
	}
	return tw.Flush()
}

func (a *App) UploadPhoto(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("upload-photo <animal-id> <file>")
	}
	if a.uploader == nil {
		return errUploadsDisabled
	}
	if err := a.require(ctx, staffOnly); err != nil {
		return err
	}

	url, err := a.uploader.UploadAnimalPhoto(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded: %s\n", url)
	return nil
}
