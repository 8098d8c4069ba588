package openapi_test

import (
	"fmt"
	"net/http"

	"github.com/Gobd/unindent"
	"github.com/Gobd/unindent/openapi"
)

var serviceDesc = unindent.Folded(`
    Manages orders for the shop.
    All endpoints require a bearer token.

    Amounts are in cents.
  `)

func ExampleDocBase() {
	doc := openapi.DocBase("Shop API", serviceDesc, "1.0.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.Info.Description)
	// Output:
	// Shop API
	// Manages orders for the shop. All endpoints require a bearer token.
	// Amounts are in cents.
}

func ExampleAddPath() {
	doc := openapi.DocBase("Shop API", unindent.View("Example API"), "1.0.0")

	op := openapi.Operation("createOrder", "Create an order", unindent.Folded(`
      Creates an order.
      The order is charged on confirmation.
  `))
	if err := openapi.AddPath(doc, "/orders", http.MethodPost, op); err != nil {
		panic(err)
	}

	fmt.Println(doc.Paths.Value("/orders").Post.Description)
	// Output: Creates an order. The order is charged on confirmation.
}
