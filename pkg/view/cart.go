package view

type CartItem struct {
	ID        int
	Title     string
	Price     string
	Quantity  int
	ImageURL  string
	LineTotal string
}

type CartPage struct {
	Items []CartItem
	Total string
	Count int
}

type CheckoutPage struct {
	OrderRef string
	Items    []CartItem
	Total    string
	Count    int
}
