// Package productview holds the state of one product detail page: the product
// fetched on mount and the shopper's color and size selection.
package productview

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	productEntity "storefront.GO/model/entity/product"
	productService "storefront.GO/service/product"
)

const (
	TemplateName = "product.html"

	LoadingText = "loading.."
	EmptyText   = "no item"

	// DefaultSizeIndex is the size checked when a product first loads.
	DefaultSizeIndex = 2
)

// Renderer executes a named template; *html/template.Template satisfies it.
type Renderer interface {
	ExecuteTemplate(w io.Writer, name string, data interface{}) error
}

type Option func(*View)

func WithLogger(logger *zap.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// WithReviews sets the summary shown when the product carries none.
func WithReviews(r productEntity.Reviews) Option {
	return func(v *View) { v.reviews = r }
}

func WithTailwindScript(url string) Option {
	return func(v *View) { v.tailwindScript = url }
}

// View is safe for concurrent use. The fetch runs on its own goroutine;
// selection calls made before the product arrives are rejected.
type View struct {
	source         productService.Source
	logger         *zap.Logger
	reviews        productEntity.Reviews
	tailwindScript string

	mountOnce sync.Once
	done      chan struct{}

	mu       sync.RWMutex
	loading  bool
	product  *productEntity.Product
	colorIdx int
	sizeIdx  int
}

func New(source productService.Source, opts ...Option) *View {
	v := &View{
		source:   source,
		logger:   zap.NewNop(),
		reviews:  productEntity.DefaultReviews,
		done:     make(chan struct{}),
		colorIdx: -1,
		sizeIdx:  -1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount issues the product fetch. Only the first call has any effect.
func (v *View) Mount(ctx context.Context) {
	v.mountOnce.Do(func() {
		v.mu.Lock()
		v.loading = true
		v.mu.Unlock()
		go v.load(ctx)
	})
}

// Done is closed once the mount fetch has finished, successfully or not.
// It never closes if Mount is not called.
func (v *View) Done() <-chan struct{} {
	return v.done
}

func (v *View) load(ctx context.Context) {
	defer close(v.done)

	products, err := v.source.FetchProducts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.logger.Warn("unable to get", zap.Error(err))
		return
	}
	if len(products) == 0 {
		v.logger.Debug("product source returned no items")
		return
	}
	p := products[0]
	v.product = &p
	v.colorIdx, v.sizeIdx = -1, -1
	if len(p.Colors) > 0 {
		v.colorIdx = 0
	}
	if len(p.Sizes) > DefaultSizeIndex {
		v.sizeIdx = DefaultSizeIndex
	}
}

// SelectColor checks the color named name. It reports false and leaves the
// selection alone if there is no product or no such color.
func (v *View) SelectColor(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.product == nil {
		return false
	}
	i := v.product.ColorIndex(name)
	if i < 0 {
		return false
	}
	v.colorIdx = i
	return true
}

// SelectSize checks the size named name. Out-of-stock sizes are disabled and
// cannot be selected.
func (v *View) SelectSize(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.product == nil {
		return false
	}
	i := v.product.SizeIndex(name)
	if i < 0 || !v.product.Sizes[i].InStock {
		return false
	}
	v.sizeIdx = i
	return true
}

// State is a point-in-time copy of the view.
type State struct {
	Loading       bool
	Product       *productEntity.Product
	SelectedColor *productEntity.Color
	SelectedSize  *productEntity.Size
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s := State{Loading: v.loading}
	if v.product == nil {
		return s
	}
	p := *v.product
	s.Product = &p
	if v.colorIdx >= 0 {
		c := p.Colors[v.colorIdx]
		s.SelectedColor = &c
	}
	if v.sizeIdx >= 0 {
		sz := p.Sizes[v.sizeIdx]
		s.SelectedSize = &sz
	}
	return s
}

// Render writes LoadingText while the fetch is outstanding, EmptyText when
// there is no product, and the product page otherwise.
func (v *View) Render(w io.Writer, r Renderer) error {
	s := v.State()
	if s.Loading {
		_, err := io.WriteString(w, LoadingText)
		return err
	}
	if s.Product == nil {
		_, err := io.WriteString(w, EmptyText)
		return err
	}
	return r.ExecuteTemplate(w, TemplateName, v.page(s))
}

// Page is the template model for a loaded product.
type Page struct {
	Title             string
	TailwindScriptURL string
	Product           productEntity.Product
	MainImage         *productEntity.Image
	Reviews           productEntity.Reviews
	AverageLabel      string
	RatingLabel       string
	Stars             []Star
	Colors            []ColorOption
	Sizes             []SizeOption
}

type Star struct {
	Filled bool
	Class  string
}

type ColorOption struct {
	productEntity.Color
	Checked     bool
	OptionClass string
	SwatchClass string
}

type SizeOption struct {
	productEntity.Size
	Checked     bool
	Disabled    bool
	OptionClass string
	MarkerClass string
}

func (v *View) page(s State) Page {
	p := *s.Product
	reviews := v.reviews
	if p.Reviews != nil {
		reviews = *p.Reviews
	}
	pg := Page{
		Title:             p.Name,
		TailwindScriptURL: v.tailwindScript,
		Product:           p,
		Reviews:           reviews,
		AverageLabel:      fmt.Sprintf("%.1f", reviews.Average),
		RatingLabel:       fmt.Sprintf("%g out of 5 stars", reviews.Average),
	}
	if len(p.Images) > 0 {
		pg.MainImage = &p.Images[0]
	}
	for i := 0; i < 5; i++ {
		st := Star{Filled: reviews.Average > float64(i), Class: "text-slate-400"}
		if st.Filled {
			st.Class = "text-slate-800"
		}
		pg.Stars = append(pg.Stars, st)
	}
	for _, c := range p.Colors {
		checked := s.SelectedColor != nil && s.SelectedColor.Name == c.Name
		pg.Colors = append(pg.Colors, ColorOption{
			Color:   c,
			Checked: checked,
			OptionClass: classNames(
				c.SelectedClass,
				when(checked, "ring-2"),
				"relative -m-0.5 flex cursor-pointer items-center justify-center rounded-full p-0.5 focus:outline-none",
			),
			SwatchClass: classNames(c.Class, "h-8 w-8 rounded-full border border-black border-opacity-10"),
		})
	}
	for _, sz := range p.Sizes {
		checked := s.SelectedSize != nil && s.SelectedSize.Name == sz.Name
		opt := SizeOption{Size: sz, Checked: checked, Disabled: !sz.InStock}
		stock := "cursor-not-allowed bg-gray-50 text-gray-200"
		if sz.InStock {
			stock = "cursor-pointer bg-white text-gray-900 shadow-sm"
			opt.MarkerClass = classNames(
				"border-2",
				when(checked, "border-indigo-500"),
				when(!checked, "border-transparent"),
				"pointer-events-none absolute -inset-px rounded-md",
			)
		}
		opt.OptionClass = classNames(
			stock,
			"group relative flex items-center justify-center rounded-md border py-3 px-4 text-sm font-medium uppercase hover:bg-gray-50 focus:outline-none sm:flex-1 sm:py-6",
		)
		pg.Sizes = append(pg.Sizes, opt)
	}
	return pg
}

func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// classNames joins the non-empty classes with single spaces.
func classNames(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
