// inventoryctl is the terminal rendition of the inventory web UI: dashboard,
// product and user management, the quantity chart and login state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/wingscafe/inventory/client"
)

const usage = `Usage: inventoryctl [flags] <command> [args]

Commands:
  dashboard                         product table with metrics
  chart                             quantity bar chart
  products                          list products
  submit  <name> <desc> <category> <price> <qty> [image]
                                    create, or merge into the product with
                                    the same name (adds quantity)
  rm      <id>                      delete a product
  add     <id> <qty>                add stock
  deduct  <id> <qty>                deduct stock
  picture <id> <file>               replace a product image
  movements <id>                    stock movement log of a product
  users                             list accounts
  signup  <username> <password>     create an account
  rename  <id> <username>           rename an account
  rm-user <id>                      delete an account
  login   <username> <password>     verify credentials, remember the user
  logout                            forget the current user
  whoami                            show the current user
`

func main() {
	log.SetFlags(0)

	apiURL := flag.String("api", "http://localhost:8080", "base URL of the inventory API")
	statePath := flag.String("state", ".inventoryctl.json", "path of the local state file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store := client.NewStore(*statePath)
	if err := store.Load(); err != nil {
		log.Fatalf("could not load state file: %v", err)
	}
	session := client.NewSession(client.New(*apiURL), store)
	ctx := context.Background()

	if err := run(ctx, session, args[0], args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, session *client.Session, command string, args []string) error {
	switch command {
	case "dashboard":
		return dashboard(ctx, session)
	case "chart":
		products, _, err := session.RefreshProducts(ctx)
		if err != nil {
			return err
		}
		return client.RenderQuantityChart(os.Stdout, products, 40)
	case "products":
		products, live, err := session.RefreshProducts(ctx)
		if err != nil {
			return err
		}
		if !live {
			fmt.Println("(offline: showing cached data)")
		}
		printProducts(products)
		return nil
	case "submit":
		return submit(ctx, session, args)
	case "rm":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		if err := session.API().DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Println("product deleted")
		return nil
	case "add", "deduct":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		qty, err := intArg(args, 1, "quantity")
		if err != nil {
			return err
		}
		var product client.Product
		if command == "add" {
			product, err = session.AddStock(ctx, id, qty)
		} else {
			product, err = session.DeductStock(ctx, id, qty)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: quantity now %d\n", product.Name, product.Quantity)
		return nil
	case "picture":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("picture: missing file argument")
		}
		url, err := session.API().UploadPicture(ctx, id, args[1])
		if err != nil {
			return err
		}
		fmt.Println("image stored at", url)
		return nil
	case "movements":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		movements, err := session.API().Movements(ctx, id)
		if err != nil {
			return err
		}
		for _, m := range movements {
			fmt.Printf("%s  %+d\n", m.CreatedAt, m.Delta)
		}
		return nil
	case "users":
		users, err := session.RefreshUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%d\t%s\n", u.ID, u.Username)
		}
		return nil
	case "signup":
		if len(args) < 2 {
			return fmt.Errorf("signup: missing username or password")
		}
		account, err := session.Signup(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("account %q created (id %d)\n", account.Username, account.ID)
		return nil
	case "rename":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("rename: missing username")
		}
		account, err := session.API().RenameUser(ctx, id, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("account %d is now %q\n", account.ID, account.Username)
		return nil
	case "rm-user":
		id, err := intArg(args, 0, "id")
		if err != nil {
			return err
		}
		if err := session.API().DeleteUser(ctx, id); err != nil {
			return err
		}
		fmt.Println("account deleted")
		return nil
	case "login":
		if len(args) < 2 {
			return fmt.Errorf("login: missing username or password")
		}
		account, err := session.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %q\n", account.Username)
		return nil
	case "logout":
		if err := session.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	case "whoami":
		if user := session.Store().CurrentUser(); user != "" {
			fmt.Println(user)
		} else {
			fmt.Println("not logged in")
		}
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func dashboard(ctx context.Context, session *client.Session) error {
	products, live, err := session.RefreshProducts(ctx)
	if err != nil {
		return err
	}
	if !live {
		fmt.Println("(offline: showing cached data)")
	}
	printProducts(products)

	if metrics, err := session.API().Metrics(ctx); err == nil {
		fmt.Printf("\n%d products, %d units in stock, value M%.2f, %d out of stock\n",
			metrics.TotalProducts, metrics.TotalQuantity, metrics.StockValue, metrics.OutOfStockCount)
	}
	return nil
}

func submit(ctx context.Context, session *client.Session, args []string) error {
	if len(args) < 5 {
		return fmt.Errorf("submit: need name, description, category, price and quantity")
	}
	form := client.ProductForm{
		Name:        args[0],
		Description: args[1],
		Category:    args[2],
	}
	if _, err := fmt.Sscanf(args[3], "%f", &form.Price); err != nil {
		return fmt.Errorf("submit: price must be a number")
	}
	if _, err := fmt.Sscanf(args[4], "%d", &form.Quantity); err != nil {
		return fmt.Errorf("submit: quantity must be an integer")
	}
	if len(args) > 5 {
		form.ImagePath = args[5]
	}

	product, created, err := session.SubmitProduct(ctx, form)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("product %q created (id %d)\n", product.Name, product.ID)
	} else {
		fmt.Printf("product %q updated, quantity now %d\n", product.Name, product.Quantity)
	}
	return nil
}

func printProducts(products []client.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tQTY\tIMAGE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\tM%.2f\t%d\t%s\n",
			p.ID, p.Name, p.Category, p.Price, p.Quantity, p.ImageURL)
	}
	w.Flush()
}

func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	var v int
	if _, err := fmt.Sscanf(args[i], "%d", &v); err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
