package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mohammadsaqib2064/onyx-aura/config"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/storefront"
)

// Interactive storefront shell. Talks to the API with the same client
// stack the web frontend uses, so the cache, cart and session behave
// identically: the catalog degrades to an empty list when the API is
// down, and the cart survives restarts on disk.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger.Initialize(logger.Config{
		Level:  "warn",
		Format: "console",
	})

	client, err := storefront.NewClient(storefront.Config{
		BaseURL: cfg.Storefront.APIBaseURL,
		Timeout: 15 * time.Second,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create client:", err)
		os.Exit(1)
	}

	store, err := storefront.NewFileStorage(cfg.Storefront.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open data dir:", err)
		os.Exit(1)
	}

	session := storefront.NewSession(client, store)
	products := storefront.NewProductManager(client, session)
	reviews := storefront.NewReviewClient(client)
	cart := storefront.NewCartManager(store)

	ctx := context.Background()
	products.LoadAll(ctx)

	sh := &shell{
		session:  session,
		products: products,
		reviews:  reviews,
		cart:     cart,
	}

	fmt.Println("Onyx Aura storefront. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		sh.dispatch(ctx, line)
	}
}

type shell struct {
	session  *storefront.Session
	products *storefront.ProductManager
	reviews  *storefront.ReviewClient
	cart     *storefront.CartManager
}

func (sh *shell) dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		sh.help()
	case "list":
		sh.list(ctx, args)
	case "show":
		sh.show(ctx, args)
	case "search":
		sh.search(args)
	case "cart":
		sh.showCart()
	case "add":
		sh.addToCart(args)
	case "rm":
		sh.removeFromCart(args)
	case "qty":
		sh.setQuantity(args)
	case "clear":
		sh.cart.Clear()
		fmt.Println("Cart cleared.")
	case "checkout":
		sh.checkout()
	case "reviews":
		sh.listReviews(ctx, args)
	case "review":
		sh.writeReview(ctx, args)
	case "login":
		sh.login(ctx, args)
	case "logout":
		sh.session.Logout()
		fmt.Println("Signed out.")
	case "whoami":
		sh.whoami()
	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (sh *shell) help() {
	fmt.Println(`Commands:
  list [category]        show the catalog, optionally Collection or Spotlight
  show <id>              show one product with specifications
  search <query>         search the loaded catalog
  cart                   show the cart
  add <id>               add a product to the cart
  rm <id>                remove a product from the cart
  qty <id> <n>           set a cart line's quantity (0 removes)
  clear                  empty the cart
  checkout               review the order total and empty the cart
  reviews <id>           list a product's reviews
  review <id>            write a review (interactive)
  login <email> <pass>   sign in
  logout                 sign out
  whoami                 show the signed-in user
  quit                   leave`)
}

func (sh *shell) list(ctx context.Context, args []string) {
	var items []storefront.Product
	if len(args) > 0 {
		items = sh.products.GetByCategory(storefront.Category(args[0]))
	} else {
		items = sh.products.LoadAll(ctx)
		if msg := sh.products.LastError(); msg != "" {
			fmt.Println("warning:", msg)
		}
	}
	if len(items) == 0 {
		fmt.Println("No products.")
		return
	}
	for _, p := range items {
		fmt.Printf("%-36s  %-20s %-10s %s\n", storefront.CanonicalID(p), p.Name, p.Category, p.Price)
	}
}

func (sh *shell) show(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: show <id>")
		return
	}
	p, err := sh.products.GetByID(ctx, args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s  %s\n%s\n", p.Name, p.Price, p.Description)
	s := p.Specifications
	if s.Movement != "" {
		fmt.Printf("  Movement: %s\n  Case: %s %s\n  Water resistance: %s\n  Power reserve: %s\n  Warranty: %s\n",
			s.Movement, s.CaseMaterial, s.CaseDiameter, s.WaterResistance, s.PowerReserve, s.Warranty)
	}
}

func (sh *shell) search(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: search <query>")
		return
	}
	matches := sh.products.Search(strings.Join(args, " "))
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return
	}
	for _, p := range matches {
		fmt.Printf("%-36s  %-20s %s\n", storefront.CanonicalID(p), p.Name, p.Price)
	}
}

func (sh *shell) showCart() {
	items := sh.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for _, item := range items {
		fmt.Printf("%-36s  %-20s x%d  %s\n",
			storefront.CanonicalID(item.Product), item.Name, item.Quantity, item.Price)
	}
	fmt.Printf("Total: %d items, $%.2f\n", sh.cart.TotalItems(), sh.cart.TotalPrice())
}

func (sh *shell) addToCart(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: add <id>")
		return
	}
	for _, p := range sh.products.Products() {
		if storefront.CanonicalID(p) == args[0] {
			sh.cart.Add(p)
			fmt.Printf("Added %s.\n", p.Name)
			return
		}
	}
	fmt.Println("Product not in the loaded catalog. Run 'list' first.")
}

func (sh *shell) removeFromCart(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: rm <id>")
		return
	}
	sh.cart.Remove(args[0])
	fmt.Println("Done.")
}

func (sh *shell) setQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: qty <id> <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("quantity must be a number")
		return
	}
	sh.cart.SetQuantity(args[0], n)
	fmt.Println("Done.")
}

func (sh *shell) checkout() {
	items := sh.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	fmt.Printf("Order: %d items, $%.2f total.\n", sh.cart.TotalItems(), sh.cart.TotalPrice())
	sh.cart.Clear()
	fmt.Println("Thank you for shopping with Onyx Aura.")
}

func (sh *shell) listReviews(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: reviews <id>")
		return
	}
	list, err := sh.reviews.ListForProduct(ctx, args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No reviews yet.")
		return
	}
	for _, r := range list {
		fmt.Printf("%s (%d/5): %s\n", r.Name, r.Rating, r.Comment)
	}
}

func (sh *shell) writeReview(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: review <id>")
		return
	}
	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string) string {
		fmt.Print(label)
		text, _ := reader.ReadString('\n')
		return strings.TrimSpace(text)
	}

	draft := storefront.ReviewDraft{ProductID: args[0]}
	draft.Name = prompt("Name: ")
	draft.Email = prompt("Email: ")
	rating, err := strconv.Atoi(prompt("Rating (1-5): "))
	if err != nil {
		fmt.Println("rating must be a number")
		return
	}
	draft.Rating = rating
	draft.Comment = prompt("Comment: ")

	review, err := sh.reviews.Create(ctx, draft)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Thanks, %s. Your review was posted.\n", review.Name)
}

func (sh *shell) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <email> <password>")
		return
	}
	user, err := sh.session.Login(ctx, args[0], args[1])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Signed in as %s (%s).\n", user.Email, user.Role)
	if sh.session.IsDemo() {
		fmt.Println("Demo account: the dashboard is read-only.")
	}
}

func (sh *shell) whoami() {
	user := sh.session.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return
	}
	fmt.Printf("%s (%s)\n", user.Email, user.Role)
}
