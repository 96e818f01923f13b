package product

// Product is one sellable item as published in the product data resource.
type Product struct {
	Name        string       `json:"name" mapstructure:"name"`
	Href        string       `json:"href,omitempty" mapstructure:"href"`
	Price       string       `json:"price" mapstructure:"price"`
	Description string       `json:"description" mapstructure:"description"`
	Details     string       `json:"details" mapstructure:"details"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs" mapstructure:"breadcrumbs"`
	Images      []Image      `json:"images" mapstructure:"images"`
	Colors      []Color      `json:"colors" mapstructure:"colors"`
	Sizes       []Size       `json:"sizes" mapstructure:"sizes"`
	Highlights  []string     `json:"highlights" mapstructure:"highlights"`
	// Reviews is optional; pages fall back to DefaultReviews.
	Reviews *Reviews `json:"reviews,omitempty" mapstructure:"reviews"`
}

type Breadcrumb struct {
	ID   int    `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
	Href string `json:"href" mapstructure:"href"`
}

type Image struct {
	Src string `json:"src" mapstructure:"src"`
	Alt string `json:"alt" mapstructure:"alt"`
}

// Color is a color variant. Class paints the swatch, SelectedClass is the ring
// color applied while the variant is checked.
type Color struct {
	Name          string `json:"name" mapstructure:"name"`
	Class         string `json:"class" mapstructure:"class"`
	SelectedClass string `json:"selectedClass" mapstructure:"selectedClass"`
}

type Size struct {
	Name    string `json:"name" mapstructure:"name"`
	InStock bool   `json:"inStock" mapstructure:"inStock"`
}

// Reviews summarizes customer ratings. Average is on a 0..5 scale.
type Reviews struct {
	Href       string  `json:"href" mapstructure:"href"`
	Average    float64 `json:"average" mapstructure:"average"`
	TotalCount int     `json:"totalCount" mapstructure:"totalCount"`
}

var DefaultReviews = Reviews{Href: "#", Average: 4, TotalCount: 117}

// ColorIndex returns the position of the color named name, or -1.
func (p *Product) ColorIndex(name string) int {
	for i, c := range p.Colors {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// SizeIndex returns the position of the size named name, or -1.
func (p *Product) SizeIndex(name string) int {
	for i, s := range p.Sizes {
		if s.Name == name {
			return i
		}
	}
	return -1
}
