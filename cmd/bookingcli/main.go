package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/travel-booking-client/internal/api"
	"github.com/mathangi54/travel-booking-client/internal/auth"
	"github.com/mathangi54/travel-booking-client/internal/config"
	"github.com/mathangi54/travel-booking-client/internal/flow"
	"github.com/mathangi54/travel-booking-client/internal/models"
	"github.com/mathangi54/travel-booking-client/internal/receipt"
	"github.com/mathangi54/travel-booking-client/internal/store"
)

// terminalNavigator prints route changes instead of pushing browser history.
type terminalNavigator struct{}

func (terminalNavigator) NavigateTo(path string) {
	fmt.Printf(">> navigating to %s\n", path)
}

func main() {
	tourID := flag.Int("tour", 0, "tour id to book (0 = pick from catalog)")
	receiptPath := flag.String("receipt", "", "write a PDF receipt to this path after confirmation")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Client.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	kv, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		logger.Fatalf("Failed to open local store: %v", err)
	}

	drafts := store.NewDraftStore(kv)
	session := auth.NewStoreSession(kv, logger)
	client := api.NewClient(cfg.Client, logger)

	fmt.Println("===========================================")
	fmt.Println("Sri Lanka Travel Booking")
	fmt.Println("===========================================")

	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		controller := flow.NewController(client, client, client, session, drafts, terminalNavigator{}, logger, flow.DefaultOptions())
		if err := controller.Initialize(ctx, flow.Entry{PackageID: *tourID}); err != nil {
			fmt.Println(controller.PageError())
			os.Exit(1)
		}

		state, diag := controller.Connectivity()
		fmt.Printf("Backend: %s\n", state)
		if state == flow.ConnectivityDisconnected {
			fmt.Println(diag)
		}

		done, resume := runWizard(ctx, in, controller, session, client)
		if done {
			booking := controller.ConfirmedBooking()
			fmt.Println()
			fmt.Printf("✅ Booking #%d confirmed: %s, %d guest(s), $%.2f total\n",
				booking.ID, booking.TourName, booking.Guests, booking.TotalPrice)
			if *receiptPath != "" {
				writeReceipt(logger, booking, *receiptPath)
			}
			return
		}
		if !resume {
			return
		}
		// A fresh controller re-hydrates from the draft persisted before
		// the login redirect.
	}
}

// runWizard drives the three steps. It returns done=true on confirmation,
// and resume=true when the session was interrupted for login and the draft
// should be picked up again.
func runWizard(ctx context.Context, in *bufio.Scanner, c *flow.Controller, session auth.Session, client *api.Client) (done, resume bool) {
	for {
		switch c.CurrentStep() {
		case flow.StepSelectPackage:
			promptPackage(in, c)
		case flow.StepPersonalInfo:
			promptPersonalInfo(in, c)
		case flow.StepReviewConfirm:
			printReview(c)
			if !confirm(in, "Confirm booking? [y/N] ") {
				c.PrevStep()
				continue
			}
			err := c.Submit(ctx)
			if err == nil {
				return true, false
			}
			var flowErr *flow.FlowError
			if errors.As(err, &flowErr) {
				fmt.Println(flowErr.Message)
				switch flowErr.Kind {
				case flow.ErrorAuthRequired, flow.ErrorAuthExpired:
					if promptLogin(ctx, in, session, client) {
						return false, true
					}
					return false, false
				case flow.ErrorConnectivity, flow.ErrorTimeout:
					if confirm(in, "Retry connectivity check? [y/N] ") {
						c.RetryConnectivity(ctx)
						continue
					}
					return false, false
				}
				continue
			}
			fmt.Println(err.Error())
		case flow.StepConfirmed:
			return true, false
		}

		if c.CurrentStep() == flow.StepReviewConfirm {
			continue
		}
		if !c.NextStep() {
			for field, msg := range c.FieldErrors() {
				fmt.Printf("  %s: %s\n", field, msg)
			}
		}
	}
}

func promptPackage(in *bufio.Scanner, c *flow.Controller) {
	draft := c.Draft()
	fmt.Println()
	fmt.Println("Step 1 of 3: package")
	for _, kind := range []models.PackageKind{models.PackageStandard, models.PackagePremium, models.PackageDeluxe} {
		pkg := models.StaticPackageCatalog[kind]
		marker := " "
		if kind == draft.SelectedPackage {
			marker = "*"
		}
		fmt.Printf(" %s %-8s $%.0f/person (%s)\n", marker, kind, pkg.PerPersonPrice, pkg.Name)
	}

	if answer := ask(in, fmt.Sprintf("Package [%s]: ", draft.SelectedPackage)); answer != "" {
		kind := models.PackageKind(strings.ToLower(answer))
		if kind.IsValid() {
			c.SetPackage(kind)
		} else {
			fmt.Println("Unknown package, keeping current selection")
		}
	}

	if answer := ask(in, fmt.Sprintf("Travelers [%d]: ", draft.TravelerCount)); answer != "" {
		if count, err := strconv.Atoi(answer); err == nil {
			c.SetTravelerCount(count)
		}
	}

	if answer := ask(in, fmt.Sprintf("Travel date YYYY-MM-DD [%s]: ", draft.TravelDate.Format("2006-01-02"))); answer != "" {
		if date, err := time.Parse("2006-01-02", answer); err == nil {
			c.SetTravelDate(date)
		} else {
			fmt.Println("Unreadable date, keeping current value")
		}
	}
}

func promptPersonalInfo(in *bufio.Scanner, c *flow.Controller) {
	draft := c.Draft()
	fmt.Println()
	fmt.Println("Step 2 of 3: contact details")

	info := draft.PersonalInfo
	if answer := ask(in, fmt.Sprintf("Full name [%s]: ", info.FullName)); answer != "" {
		info.FullName = answer
	}
	if answer := ask(in, fmt.Sprintf("Email [%s]: ", info.Email)); answer != "" {
		info.Email = answer
	}
	if answer := ask(in, fmt.Sprintf("Phone [%s]: ", info.Phone)); answer != "" {
		info.Phone = answer
	}
	if answer := ask(in, "Special requests []: "); answer != "" {
		info.SpecialRequests = answer
	}
	c.SetPersonalInfo(info)
}

func printReview(c *flow.Controller) {
	draft := c.Draft()
	fmt.Println()
	fmt.Println("Step 3 of 3: review")
	if draft.SourceTour != nil {
		fmt.Printf("  Tour:      %s (%s)\n", draft.SourceTour.Name, draft.SourceTour.Location)
	}
	fmt.Printf("  Package:   %s\n", draft.SelectedPackage)
	fmt.Printf("  Travelers: %d\n", draft.TravelerCount)
	fmt.Printf("  Date:      %s\n", draft.TravelDate.Format("2006-01-02"))
	fmt.Printf("  Name:      %s\n", draft.PersonalInfo.FullName)
	fmt.Printf("  Total:     $%.2f ($%.2f x %d)\n", draft.TotalAmount, c.UnitPrice(), draft.TravelerCount)
}

func promptLogin(ctx context.Context, in *bufio.Scanner, session auth.Session, client *api.Client) bool {
	fmt.Println()
	fmt.Println("Sign in to finish your booking.")
	email := ask(in, "Email: ")
	password := ask(in, "Password: ")
	if email == "" || password == "" {
		return false
	}

	user, token, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		fmt.Println(api.ErrorMessage(err, "Login failed"))
		return false
	}
	if err := session.StoreCredentials(*user, token); err != nil {
		fmt.Println("Could not store credentials:", err)
		return false
	}
	fmt.Printf("Welcome back, %s.\n", user.Username)
	return true
}

func writeReceipt(logger *logrus.Logger, booking *models.Booking, path string) {
	data, err := receipt.Generate(booking)
	if err != nil {
		logger.WithError(err).Error("Failed to render receipt")
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.WithError(err).Error("Failed to write receipt")
		return
	}
	fmt.Printf("Receipt written to %s\n", path)
}

func ask(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func confirm(in *bufio.Scanner, prompt string) bool {
	answer := strings.ToLower(ask(in, prompt))
	return answer == "y" || answer == "yes"
}
