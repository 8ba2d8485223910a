package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/priyanshi-bakery/storefront/internal/client"
	"github.com/priyanshi-bakery/storefront/internal/config"
	"github.com/priyanshi-bakery/storefront/internal/session"
	"github.com/priyanshi-bakery/storefront/pkg/logger"
)

const usage = `commands:
  list              show the catalog
  add <id>          add a product to the cart
  remove <id>       remove a product from the cart
  qty <id> <n>      set a line item's quantity
  cart              show the cart
  name <name>       set customer name
  email <email>     set customer email
  order             place the order
  status <id>       check an order's status
  quit              exit`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("error")
	api := client.New(cfg.Client.BaseURL, time.Duration(cfg.Client.RequestTimeout)*time.Second)
	sess := session.New(api, log)

	ctx := context.Background()

	fmt.Println("Welcome to Priyanshi's Bakery")
	if err := sess.LoadCatalog(ctx); err != nil {
		fmt.Println(sess.Message())
	} else {
		printCatalog(sess)
	}
	fmt.Println(usage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			if err := sess.LoadCatalog(ctx); err != nil {
				fmt.Println(sess.Message())
				continue
			}
			printCatalog(sess)
		case "add":
			id, ok := parseID(fields, 1)
			if !ok {
				continue
			}
			product, found := sess.Product(id)
			if !found {
				fmt.Println("no such product")
				continue
			}
			if !product.InStock {
				fmt.Println("out of stock")
				continue
			}
			sess.Cart.Add(product)
			fmt.Printf("added %s\n", product.Name)
		case "remove":
			if id, ok := parseID(fields, 1); ok {
				sess.Cart.Remove(id)
			}
		case "qty":
			id, ok := parseID(fields, 1)
			if !ok {
				continue
			}
			n, ok := parseID(fields, 2)
			if !ok {
				continue
			}
			sess.Cart.UpdateQuantity(id, int(n))
		case "cart":
			printCart(sess)
		case "name":
			sess.CustomerName = strings.Join(fields[1:], " ")
		case "email":
			if len(fields) > 1 {
				sess.CustomerEmail = fields[1]
			}
		case "order":
			if _, err := sess.PlaceOrder(ctx); err != nil {
				fmt.Println(sess.Message())
				continue
			}
			fmt.Println(sess.Message())
			fmt.Printf("your order id is %d\n", sess.OrderID())
		case "status":
			id, ok := parseID(fields, 1)
			if !ok {
				continue
			}
			if _, err := sess.CheckStatus(ctx, id); err != nil {
				fmt.Println(sess.Message())
				continue
			}
			fmt.Println(sess.Message())
		case "quit", "exit":
			return
		default:
			fmt.Println(usage)
		}
	}
}

func parseID(fields []string, idx int) (int64, bool) {
	if len(fields) <= idx {
		fmt.Println(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(fields[idx], 10, 64)
	if err != nil {
		fmt.Println("not a number:", fields[idx])
		return 0, false
	}
	return id, true
}

func printCatalog(sess *session.Session) {
	for _, p := range sess.Catalog() {
		stock := ""
		if !p.InStock {
			stock = " (out of stock)"
		}
		fmt.Printf("%3d  %-24s ₹%.2f%s\n     %s\n", p.ID, p.Name, p.DisplayPrice, stock, p.Description)
	}
}

func printCart(sess *session.Session) {
	if sess.Cart.IsEmpty() {
		fmt.Println("Your cart is empty. Add some delicious treats!")
		return
	}
	for _, item := range sess.Cart.Items() {
		fmt.Printf("%3d  %-24s x%d  ₹%.2f\n", item.ProductID, item.Name, item.Quantity, item.DisplayPrice*float64(item.Quantity))
	}
	fmt.Printf("Total: ₹%.2f\n", sess.Cart.DisplayTotal())
}
