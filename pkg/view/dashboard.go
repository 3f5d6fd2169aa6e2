package view

type CategoryStat struct {
	Name  string
	Count int
}

type DashboardPage struct {
	HasData       bool
	Total         int
	AveragePrice  string
	MostExpensive ProductCard
	Cheapest      ProductCard
	Categories    []CategoryStat
}

type TeamMember struct {
	Name      string
	StudentID string
	Photo     string
}

type AboutPage struct {
	Members []TeamMember
}
