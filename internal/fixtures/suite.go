package fixtures

import (
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/browser"
	"github.com/toolshop-qa/toolshop-e2e/internal/config"
	"github.com/toolshop-qa/toolshop-e2e/internal/pages"
	"github.com/toolshop-qa/toolshop-e2e/internal/testdata"
)

// Suite is a container pre-registered with every fixture the specs
// use. Page-object fixtures share one isolated browser page per test;
// the ones whose screen is the test's starting point navigate there
// during setup.
type Suite struct {
	*Container
	cfg     *config.Config
	session *browser.Session
}

// NewSuite builds the per-test fixture graph.
func NewSuite(t *testing.T, cfg *config.Config, session *browser.Session) *Suite {
	s := &Suite{
		Container: NewContainer(t),
		cfg:       cfg,
		session:   session,
	}

	s.Register("page", func(c *Container) (any, func() error, error) {
		// Session.NewPage registers context/page teardown itself.
		return session.NewPage(t), nil, nil
	})

	s.Register("chrome", func(c *Container) (any, func() error, error) {
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		return pages.NewChrome(page.(playwright.Page), cfg), nil, nil
	})

	// bareLoginPage is the login page object without navigation, for
	// flows that reach the login form some other way (post-registration
	// redirect, admin authentication).
	s.Register("bareLoginPage", func(c *Container) (any, func() error, error) {
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		return pages.NewLoginPage(page.(playwright.Page), cfg), nil, nil
	})

	s.Register("loginPage", func(c *Container) (any, func() error, error) {
		lp, err := c.Resolve("bareLoginPage")
		if err != nil {
			return nil, nil, err
		}
		login := lp.(*pages.LoginPage)
		if err := login.Navigate(); err != nil {
			return nil, nil, err
		}
		return login, nil, nil
	})

	s.Register("recoveryPage", func(c *Container) (any, func() error, error) {
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		recovery := pages.NewPasswordRecoveryPage(page.(playwright.Page), cfg)
		if err := recovery.Navigate(); err != nil {
			return nil, nil, err
		}
		return recovery, nil, nil
	})

	s.Register("productsPage", func(c *Container) (any, func() error, error) {
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		products := pages.NewProductsPage(page.(playwright.Page), cfg)
		if err := products.Navigate(); err != nil {
			return nil, nil, err
		}
		return products, nil, nil
	})

	s.Register("registrationPage", func(c *Container) (any, func() error, error) {
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		registration := pages.NewRegistrationPage(page.(playwright.Page), cfg)
		if err := registration.Navigate(); err != nil {
			return nil, nil, err
		}
		return registration, nil, nil
	})

	s.Register("adminPage", func(c *Container) (any, func() error, error) {
		login, err := c.Resolve("bareLoginPage")
		if err != nil {
			return nil, nil, err
		}
		page, err := c.Resolve("page")
		if err != nil {
			return nil, nil, err
		}
		return pages.NewAdminPage(page.(playwright.Page), cfg, login.(*pages.LoginPage)), nil, nil
	})

	s.Register("users", func(c *Container) (any, func() error, error) {
		return testdata.KnownUsers(), nil, nil
	})

	s.Register("examples", func(c *Container) (any, func() error, error) {
		return testdata.Examples(), nil, nil
	})

	s.Register("uniqueRegistration", func(c *Container) (any, func() error, error) {
		return testdata.UniqueRegistration(), nil, nil
	})

	return s
}

// Config returns the suite configuration.
func (s *Suite) Config() *config.Config { return s.cfg }

// Page is the test's isolated browser page.
func (s *Suite) Page() playwright.Page {
	return s.MustResolve("page").(playwright.Page)
}

// Chrome is the shared navigation shell.
func (s *Suite) Chrome() *pages.Chrome {
	return s.MustResolve("chrome").(*pages.Chrome)
}

// LoginPage is the login page object, navigated to the login form.
func (s *Suite) LoginPage() *pages.LoginPage {
	return s.MustResolve("loginPage").(*pages.LoginPage)
}

// BareLoginPage is the login page object without navigation.
func (s *Suite) BareLoginPage() *pages.LoginPage {
	return s.MustResolve("bareLoginPage").(*pages.LoginPage)
}

// RecoveryPage is the password recovery page object, navigated there.
func (s *Suite) RecoveryPage() *pages.PasswordRecoveryPage {
	return s.MustResolve("recoveryPage").(*pages.PasswordRecoveryPage)
}

// ProductsPage is the catalog page object, navigated to the storefront
// with the initial product listing captured.
func (s *Suite) ProductsPage() *pages.ProductsPage {
	return s.MustResolve("productsPage").(*pages.ProductsPage)
}

// RegistrationPage is the registration page object, navigated there.
func (s *Suite) RegistrationPage() *pages.RegistrationPage {
	return s.MustResolve("registrationPage").(*pages.RegistrationPage)
}

// AdminPage is the admin page object; authentication happens when the
// test calls LoginAsAdmin.
func (s *Suite) AdminPage() *pages.AdminPage {
	return s.MustResolve("adminPage").(*pages.AdminPage)
}

// Users are the pre-provisioned demo accounts.
func (s *Suite) Users() testdata.Users {
	return s.MustResolve("users").(testdata.Users)
}

// Examples are well-formed credentials belonging to no account.
func (s *Suite) Examples() testdata.ExampleStrings {
	return s.MustResolve("examples").(testdata.ExampleStrings)
}

// UniqueRegistration is a registration record with a fresh email,
// generated once per test.
func (s *Suite) UniqueRegistration() testdata.Registration {
	return s.MustResolve("uniqueRegistration").(testdata.Registration)
}
