package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/contactvanshdev-code/restaurant-website/internal/reservation"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

func (a *app) newReserveCmd() *cobra.Command {
	var (
		date   string
		guests int
		slot   string
	)
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Print a reservation ticket",
		Long: `Choose date, party size, and a service window. Confirmation prints
instantly with your dining details. Nothing is booked or stored.`,
		Example: `  emberoak reserve --date 2026-03-14 --guests 4 --time "7:30 PM"`,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := reservation.NewForm(time.Now())
			if date != "" {
				form.Date = date
			}
			if guests < reservation.MinGuests || guests > reservation.MaxGuests {
				return usagef("--guests must be between %d and %d", reservation.MinGuests, reservation.MaxGuests)
			}
			form.SetGuests(guests)

			w := cmd.OutOrStdout()
			t := ui.Current()
			if slot == "" {
				ui.Panel(w, []string{
					ui.C(t.Title, "Claim your seat by the fire."),
					"Date    " + form.FormattedDate(),
					"Guests  " + reservation.GuestLabel(form.Guests),
					"",
					ui.C(t.Muted, "Service windows: "+strings.Join(reservation.Slots, ", ")),
					ui.C(t.Muted, "Select a time slot to generate your confirmation ticket."),
				})
				return nil
			}
			if !form.Pick(slot) {
				return usagef("unknown time %q (want one of %s)", slot, strings.Join(reservation.Slots, ", "))
			}
			ticket, _ := form.Ticket()
			ui.Panel(w, []string{
				ui.C(t.Muted, "RESERVATION TICKET") + "  " + ui.C(t.Accent, ticket.Code),
				"Date    " + ticket.Date,
				"Guests  " + reservation.GuestLabel(ticket.Guests),
				"Time    " + ticket.Time,
				"",
				ui.C(t.Success, reservation.ClosingLine),
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "YYYY-MM-DD (default today)")
	cmd.Flags().IntVarP(&guests, "guests", "g", reservation.DefaultGuests, "party size, 1-6")
	cmd.Flags().StringVarP(&slot, "time", "t", "", "service window, e.g. \"7:30 PM\"")
	return cmd
}
