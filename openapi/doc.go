// Package openapi writes folded prose into OpenAPI 3 documents built with
// kin-openapi.
//
// Descriptions in an OpenAPI document are long sentences that read badly as
// one Go string. Write them as indented blocks and let [unindent.Folded]
// join them:
//
//	var ordersDesc = unindent.Folded(`
//	    Creates an order for the authenticated customer.
//	    The order is not charged until it is confirmed.
//	`)
//
//	doc := openapi.DocBase("Shop API", serviceDesc, "1.0.0")
//	openapi.AddPath(doc, "/orders", http.MethodPost,
//	    openapi.Operation("createOrder", "Create an order", ordersDesc))
package openapi
