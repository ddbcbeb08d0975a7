package pages

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// Product is one catalog entry as returned by the products API.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
	Brand struct {
		Name string `json:"name"`
	} `json:"brand"`
}

// ProductList is one page of the paginated products API response.
type ProductList struct {
	Data        []Product `json:"data"`
	CurrentPage int       `json:"current_page"`
	PerPage     int       `json:"per_page"`
	Total       int       `json:"total"`
}

// IDs returns the product ids on this page.
func (l *ProductList) IDs() []string {
	ids := make([]string, 0, len(l.Data))
	for _, p := range l.Data {
		ids = append(ids, p.ID)
	}
	return ids
}

// ProductsPage drives the storefront catalog: pagination controls and
// the category/brand filter sidebar. Every state change is observed
// through the intercepted products API response rather than timed
// waits.
type ProductsPage struct {
	page playwright.Page
	cfg  *config.Config

	NoResults playwright.Locator

	productLinks string // selector for product card anchors

	first   *ProductList // response captured during navigation
	current *ProductList // most recent decoded response
}

// NewProductsPage binds a catalog page object to page.
func NewProductsPage(page playwright.Page, cfg *config.Config) *ProductsPage {
	return &ProductsPage{
		page:         page,
		cfg:          cfg,
		NoResults:    page.Locator(`[data-test="no-results"]`),
		productLinks: `a[data-test^="product-"]`,
	}
}

// Navigate opens the storefront root and captures the initial product
// listing from the API response issued during load.
func (p *ProductsPage) Navigate() error {
	list, err := p.ExpectProducts(func() error {
		_, err := p.page.Goto(p.cfg.StorefrontURL())
		return err
	})
	if err != nil {
		return fmt.Errorf("navigate to storefront: %w", err)
	}
	p.first = list
	return nil
}

// FirstPage returns the listing captured while the page loaded.
func (p *ProductsPage) FirstPage() *ProductList {
	return p.first
}

// Current returns the most recently intercepted listing.
func (p *ProductsPage) Current() *ProductList {
	return p.current
}

func (p *ProductsPage) expectList(pred func(playwright.Response) bool, action func() error) (*ProductList, error) {
	resp, err := p.page.ExpectResponse(pred, action,
		playwright.PageExpectResponseOptions{Timeout: playwright.Float(float64(p.cfg.TimeoutMS))})
	if err != nil {
		return nil, fmt.Errorf("wait for products response: %w", err)
	}
	body, err := resp.Body()
	if err != nil {
		return nil, fmt.Errorf("read products response: %w", err)
	}
	list := &ProductList{}
	if err := json.Unmarshal(body, list); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}
	p.current = list
	return list, nil
}

func productsRequest(r playwright.Response) bool {
	return strings.Contains(r.URL(), "products?")
}

// ExpectProducts runs action and returns the next products API
// response of any shape. The waiter is registered before the action.
func (p *ProductsPage) ExpectProducts(action func() error) (*ProductList, error) {
	return p.expectList(productsRequest, action)
}

// ExpectProductsForPage runs action and returns the products response
// for the given page number.
func (p *ProductsPage) ExpectProductsForPage(n int, action func() error) (*ProductList, error) {
	needle := fmt.Sprintf("page=%d", n)
	return p.expectList(func(r playwright.Response) bool {
		return productsRequest(r) && strings.Contains(r.URL(), needle)
	}, action)
}

// ExpectCategoryFiltered runs action and returns the next successful
// by_category response.
func (p *ProductsPage) ExpectCategoryFiltered(action func() error) (*ProductList, error) {
	return p.expectList(func(r playwright.Response) bool {
		return strings.Contains(r.URL(), "by_category") && r.Status() == 200
	}, action)
}

// ExpectBrandFiltered runs action and returns the next successful
// by_brand response.
func (p *ProductsPage) ExpectBrandFiltered(action func() error) (*ProductList, error) {
	return p.expectList(func(r playwright.Response) bool {
		return strings.Contains(r.URL(), "by_brand") && r.Status() == 200
	}, action)
}

// ExpectPageWithFilters runs action and returns the response for page n
// carrying both category and brand filters.
func (p *ProductsPage) ExpectPageWithFilters(n int, action func() error) (*ProductList, error) {
	needle := fmt.Sprintf("page=%d", n)
	return p.expectList(func(r playwright.Response) bool {
		return strings.Contains(r.URL(), needle) &&
			strings.Contains(r.URL(), "by_category") &&
			strings.Contains(r.URL(), "by_brand") &&
			r.Status() == 200
	}, action)
}

// ToggleCategory clicks the sidebar checkbox for the category. The
// checkbox is a boolean toggle: clicking an active filter unchecks it.
func (p *ProductsPage) ToggleCategory(name string) error {
	if err := p.page.GetByLabel(name).Click(); err != nil {
		return fmt.Errorf("toggle category %q: %w", name, err)
	}
	return nil
}

// ToggleBrand clicks the sidebar checkbox for the brand.
func (p *ProductsPage) ToggleBrand(name string) error {
	if err := p.page.GetByLabel(name).Click(); err != nil {
		return fmt.Errorf("toggle brand %q: %w", name, err)
	}
	return nil
}

// GoToPage clicks the numbered pagination control and returns that
// page's listing.
func (p *ProductsPage) GoToPage(n int) (*ProductList, error) {
	return p.ExpectProductsForPage(n, func() error {
		return p.page.GetByLabel(fmt.Sprintf("Page-%d", n)).Click()
	})
}

// ClickNext advances one page and returns the new listing.
func (p *ProductsPage) ClickNext() (*ProductList, error) {
	return p.ExpectProducts(func() error {
		return p.nextItem().Click()
	})
}

// ClickPrev goes back one page and returns the new listing.
func (p *ProductsPage) ClickPrev() (*ProductList, error) {
	return p.ExpectProducts(func() error {
		return p.prevItem().Click()
	})
}

// GoToLastPage clicks the highest numbered pagination item, found by
// listing the pagination controls and dropping the prev/next markers.
// A single-page catalog has no numbered items beyond the current one;
// the current page is then already the last and no click happens.
func (p *ProductsPage) GoToLastPage() (*ProductList, error) {
	numbered := p.page.Locator(".pagination li").
		Filter(playwright.LocatorFilterOptions{HasNotText: "«"}).
		Filter(playwright.LocatorFilterOptions{HasNotText: "»"})

	count, err := numbered.Count()
	if err != nil {
		return nil, fmt.Errorf("list pagination items: %w", err)
	}
	if count <= 1 {
		return p.current, nil
	}
	return p.ExpectProducts(func() error {
		return numbered.Last().Click()
	})
}

func (p *ProductsPage) nextItem() playwright.Locator {
	return p.page.Locator(".pagination li").Filter(playwright.LocatorFilterOptions{HasText: "»"})
}

func (p *ProductsPage) prevItem() playwright.Locator {
	return p.page.Locator(".pagination li").Filter(playwright.LocatorFilterOptions{HasText: "«"})
}

// NextDisabled reports whether the next control is inert, which the app
// signals through a disabled class on the list item.
func (p *ProductsPage) NextDisabled() (bool, error) {
	return p.itemDisabled(p.nextItem())
}

// PrevDisabled reports whether the previous control is inert.
func (p *ProductsPage) PrevDisabled() (bool, error) {
	return p.itemDisabled(p.prevItem())
}

func (p *ProductsPage) itemDisabled(item playwright.Locator) (bool, error) {
	class, err := item.GetAttribute("class")
	if err != nil {
		return false, fmt.Errorf("read pagination item class: %w", err)
	}
	return strings.Contains(class, "disabled"), nil
}

// WaitForProducts blocks until at least one product card is attached
// and visible.
func (p *ProductsPage) WaitForProducts() error {
	if err := p.page.Locator(p.productLinks).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for product cards: %w", err)
	}
	return nil
}

// DisplayedProductIDs returns the data-test attribute of every visible
// product card, e.g. "product-01HXX…".
func (p *ProductsPage) DisplayedProductIDs() ([]string, error) {
	cards, err := p.page.Locator(p.productLinks).All()
	if err != nil {
		return nil, fmt.Errorf("list product cards: %w", err)
	}
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		id, err := card.GetAttribute("data-test")
		if err != nil {
			return nil, fmt.Errorf("read product card id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DisplayedProductNames returns the card titles currently rendered.
func (p *ProductsPage) DisplayedProductNames() ([]string, error) {
	names, err := p.page.Locator(`h5[data-test="product-name"]`).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("read product names: %w", err)
	}
	return names, nil
}
