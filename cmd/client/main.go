// Package main implements the interactive coffee-ordering client: an
// onboarding check, account commands, catalog browsing with search and
// favorites, a cart, checkout with address autocomplete, and order-status
// countdown screens.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/countdown"
	"github.com/ebazhanova/CoffeeToGo/internal/client/geocode"
	"github.com/ebazhanova/CoffeeToGo/internal/client/history"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/client/state"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

var (
	version   string
	buildDate string
)

// screens bundles the state holders the shell dispatches to.
type screens struct {
	prefs     *prefs.Preferences
	ring      *history.Ring
	signIn    *state.SignIn
	register  *state.Registration
	catalog   *state.Catalog
	cart      *state.Cart
	favorites *state.Favorites
	checkout  *state.Checkout
	orders    *state.OrderHistory

	deliveryMinutes float64
	pickupMinutes   float64
}

// prompt reads one line of input after printing the label.
func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// repl runs the interactive shell loop.
func repl(s *screens) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("coffee> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, register, login, logout, whoami, menu, types, filter <type>, search <text>, suggest, fav, favtoggle <id>, cart, add <id> [qty], qty <id> <n>, remove <id>, checkout <delivery|pickup>, orders, track <delivery|pickup>, exit")
		case "register":
			email := prompt(scanner, "Email: ")
			name := prompt(scanner, "Name: ")
			password := prompt(scanner, "Password: ")
			s.register.Submit(ctx, email, password, name)
			printAuthResult(s.register.Snapshot().Message, s.register.Snapshot().Done, s.prefs)
		case "login":
			email := prompt(scanner, "Email: ")
			password := prompt(scanner, "Password: ")
			s.signIn.Submit(ctx, email, password)
			printAuthResult(s.signIn.Snapshot().Message, s.signIn.Snapshot().Done, s.prefs)
		case "logout":
			s.prefs.ClearSession()
			fmt.Println("Logged out")
		case "whoami":
			if sess := s.prefs.Session(); sess != nil {
				fmt.Printf("%s <%s>\n", sess.Name, sess.Email)
			} else {
				fmt.Println("Not signed in")
			}
		case "menu":
			s.catalog.Load(ctx)
			printCatalog(s.catalog)
		case "types":
			s.catalog.Load(ctx)
			for _, t := range s.catalog.Snapshot().Types {
				fmt.Printf("%d: %s\n", t.ID, t.Name)
			}
		case "filter":
			s.catalog.SetTypeFilter(strings.Join(args[1:], " "))
			printCatalog(s.catalog)
		case "search":
			s.catalog.Search(strings.Join(args[1:], " "))
			printCatalog(s.catalog)
		case "suggest":
			for _, q := range s.ring.Entries() {
				fmt.Println(q)
			}
		case "fav":
			s.favorites.Load(ctx)
			snap := s.favorites.Snapshot()
			if snap.Message != "" {
				fmt.Println(snap.Message)
				continue
			}
			for _, c := range snap.Coffees {
				fmt.Printf("%d: %s (%.2f)\n", c.ID, c.Name, c.Price)
			}
		case "favtoggle":
			id, ok := parseID(args)
			if !ok {
				fmt.Println("Usage: favtoggle <id>")
				continue
			}
			s.favorites.Toggle(ctx, id)
			if msg := s.favorites.Snapshot().Message; msg != "" {
				fmt.Println(msg)
			}
		case "cart":
			s.cart.Load(ctx)
			printCart(s.cart)
		case "add":
			id, ok := parseID(args)
			if !ok {
				fmt.Println("Usage: add <id> [qty]")
				continue
			}
			qty := 1
			if len(args) > 2 {
				qty, _ = strconv.Atoi(args[2])
			}
			s.cart.Add(ctx, id, qty)
			printCart(s.cart)
		case "qty":
			if len(args) < 3 {
				fmt.Println("Usage: qty <id> <n>")
				continue
			}
			id, ok := parseID(args)
			n, err := strconv.Atoi(args[2])
			if !ok || err != nil {
				fmt.Println("Usage: qty <id> <n>")
				continue
			}
			s.cart.SetQuantity(ctx, id, n)
			printCart(s.cart)
		case "remove":
			id, ok := parseID(args)
			if !ok {
				fmt.Println("Usage: remove <id>")
				continue
			}
			s.cart.Remove(ctx, id)
			printCart(s.cart)
		case "checkout":
			if len(args) < 2 {
				fmt.Println("Usage: checkout <delivery|pickup>")
				continue
			}
			runCheckout(ctx, scanner, s, models.OrderKind(args[1]))
		case "orders":
			s.orders.Load(ctx)
			snap := s.orders.Snapshot()
			if snap.Message != "" {
				fmt.Println(snap.Message)
				continue
			}
			for _, o := range snap.Orders {
				fmt.Printf("#%s %s %.2f %s\n", o.Number, o.Kind, o.Total, o.Status)
			}
		case "track":
			if len(args) < 2 {
				fmt.Println("Usage: track <delivery|pickup>")
				continue
			}
			runTracking(scanner, s, args[1])
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) < 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func printAuthResult(message string, done bool, p *prefs.Preferences) {
	if message != "" {
		fmt.Println(message)
		return
	}
	if done {
		if sess := p.Session(); sess != nil {
			fmt.Printf("Welcome, %s!\n", sess.Name)
		}
	}
}

func printCatalog(c *state.Catalog) {
	snap := c.Snapshot()
	if snap.Message != "" {
		fmt.Println(snap.Message)
		return
	}
	for _, coffee := range c.Visible() {
		fmt.Printf("%d: %s [%s] %.2f\n", coffee.ID, coffee.Name, coffee.Type, coffee.Price)
	}
}

func printCart(c *state.Cart) {
	snap := c.Snapshot()
	if snap.Message != "" {
		fmt.Println(snap.Message)
		return
	}
	for _, item := range snap.Items {
		fmt.Printf("%d: %s x%d = %.2f\n", item.CoffeeID, item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Printf("Total: %.2f\n", snap.Total)
}

// runCheckout walks the address/note dialog and places the order.
func runCheckout(ctx context.Context, scanner *bufio.Scanner, s *screens, kind models.OrderKind) {
	if kind == models.Delivery {
		snap := s.checkout.Snapshot()
		label := "Address: "
		if snap.Address != "" {
			label = fmt.Sprintf("Address [%s]: ", snap.Address)
		}
		address := prompt(scanner, label)
		if address != "" {
			s.checkout.Suggest(ctx, address)
			for i, p := range s.checkout.Snapshot().Suggestions {
				fmt.Printf("  %d) %s\n", i+1, p.DisplayName)
			}
			if pick := prompt(scanner, "Pick a suggestion number or press Enter to keep typed address: "); pick != "" {
				if n, err := strconv.Atoi(pick); err == nil {
					suggestions := s.checkout.Snapshot().Suggestions
					if n >= 1 && n <= len(suggestions) {
						address = suggestions[n-1].DisplayName
					}
				}
			}
			s.checkout.SetAddress(address)
		}
		noteLabel := "Note for courier: "
		if note := s.checkout.Snapshot().Note; note != "" {
			noteLabel = fmt.Sprintf("Note for courier [%s]: ", note)
		}
		if note := prompt(scanner, noteLabel); note != "" {
			s.checkout.SetNote(note)
		}
	}

	s.checkout.PlaceOrder(ctx, kind)
	snap := s.checkout.Snapshot()
	if snap.Message != "" {
		fmt.Println(snap.Message)
		return
	}
	if snap.Placed != nil {
		fmt.Printf("Order #%s placed, total %.2f\n", snap.Placed.Number, snap.Placed.Total)
	}
}

// runTracking shows the countdown screen until it completes or the user
// presses Enter to leave.
func runTracking(scanner *bufio.Scanner, s *screens, kindArg string) {
	var (
		variant countdown.Variant
		minutes float64
		active  string
		done    string
	)
	switch kindArg {
	case "delivery":
		variant, minutes = countdown.Delivery, s.deliveryMinutes
		active, done = "Courier is on the way", "Order delivered"
	case "pickup":
		variant, minutes = countdown.Pickup, s.pickupMinutes
		active, done = "Your order is being prepared", "Order is ready for pickup"
	default:
		fmt.Println("Usage: track <delivery|pickup>")
		return
	}

	tracker := state.NewTracking(s.prefs, variant, minutes)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tracker.Start(ctx)

	fmt.Printf("%s. Press Enter to leave.\n", active)
	left := make(chan struct{})
	go func() {
		scanner.Scan()
		close(left)
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-left:
			tracker.Leave()
			return
		case <-ticker.C:
			snap := tracker.Snapshot()
			fmt.Printf("\r%s: %d/%d sec (%.0f%%)", active, snap.TotalSeconds-snap.SecondsRemaining, snap.TotalSeconds, snap.Progress*100)
			if snap.Done {
				fmt.Printf("\n%s\n", done)
				tracker.Leave()
				return
			}
		}
	}
}

// main parses command-line flags, prepares local storage and the API
// clients, and starts the shell.
func main() {
	var (
		baseURL    string
		geoURL     string
		prefsPath  string
		deliveryMn float64
		pickupMn   float64
		showVer    bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&geoURL, "geo", "https://nominatim.openstreetmap.org", "geocoding service base URL")
	flag.StringVar(&prefsPath, "prefs", "prefs.json", "path to the local preferences file")
	flag.Float64Var(&deliveryMn, "delivery-min", 30, "delivery countdown duration in minutes")
	flag.Float64Var(&pickupMn, "pickup-min", 5, "pickup countdown duration in minutes")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("CoffeeToGo Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	store := prefs.NewFileStore(prefsPath)
	if err := store.Load(); err != nil {
		log.Fatal(err)
	}
	p := prefs.New(store)

	client, err := api.New(baseURL, nil)
	if err != nil {
		log.Fatal(err)
	}
	geo := geocode.New(geoURL, nil)
	ring := history.New(store)

	if p.IsFirstLaunch() {
		fmt.Println("Welcome to CoffeeToGo! Register an account or log in to start ordering.")
		p.MarkFirstLaunchComplete()
	} else if sess := p.Session(); sess != nil {
		fmt.Printf("Welcome back, %s!\n", sess.Name)
	}

	s := &screens{
		prefs:           p,
		ring:            ring,
		signIn:          state.NewSignIn(client, p),
		register:        state.NewRegistration(client, p),
		catalog:         state.NewCatalog(client, p, ring),
		cart:            state.NewCart(client, p),
		favorites:       state.NewFavorites(client, p),
		checkout:        state.NewCheckout(client, p, geo),
		orders:          state.NewOrderHistory(client, p),
		deliveryMinutes: deliveryMn,
		pickupMinutes:   pickupMn,
	}

	repl(s)
}
