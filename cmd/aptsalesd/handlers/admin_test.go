package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/opst/aptsales/cmd/aptsalesd/handlers"
	httptestutil "github.com/opst/aptsales/internal/testutils/http"
	"github.com/opst/aptsales/pkg/admin"
	apiadmin "github.com/opst/aptsales/pkg/api/types/admin"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain"
	aptmocks "github.com/opst/aptsales/pkg/domain/apartment/db/mock"
	clientmocks "github.com/opst/aptsales/pkg/domain/client/db/mock"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	historymocks "github.com/opst/aptsales/pkg/domain/history/db/mock"
	itemmocks "github.com/opst/aptsales/pkg/domain/item/db/mock"
	paymentmocks "github.com/opst/aptsales/pkg/domain/payment/db/mock"
	usermocks "github.com/opst/aptsales/pkg/domain/user/db/mock"
	"github.com/opst/aptsales/pkg/utils/try"
)

type adminStores struct {
	users        *usermocks.UserInterface
	items        *itemmocks.ItemInterface
	paymentTypes *paymentmocks.PaymentTypeInterface
}

func newRegistry(users *usermocks.UserInterface) (*admin.Registry, adminStores) {
	s := adminStores{
		users:        users,
		items:        itemmocks.NewItemInterface(),
		paymentTypes: paymentmocks.NewPaymentTypeInterface(),
	}
	return admin.NewRegistry(admin.Stores{
		Users:        s.users,
		Items:        s.items,
		Apartments:   aptmocks.NewApartmentInterface(),
		Clients:      clientmocks.NewClientInterface(),
		PaymentTypes: s.paymentTypes,
		Payments:     paymentmocks.NewPaymentInterface(),
		HistoryTypes: historymocks.NewHistoryTypeInterface(),
		Histories:    historymocks.NewHistoryInterface(),
	}), s
}

func TestAdminLoginHandler(t *testing.T) {
	dash := try.To(admin.NewDashboard()).OrFatal(t)

	t.Run("active superuser gets a session and is redirected", func(t *testing.T) {
		users := newUsers(adminUser, staffUser)
		signer := newSigner()
		testee := handlers.AdminLoginHandler(users, dash, signer, time.Hour, "/admin/")

		c, resp := httptestutil.Post(
			echo.New(), "/admin/login/",
			loginForm("admin@example.com", "correct-horse"), httptestutil.Form(),
		)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusFound {
			t.Errorf("status code: %d", resp.Code)
		}
		if loc := resp.Header().Get("Location"); loc != "/admin/" {
			t.Errorf("location: %s", loc)
		}

		var session *http.Cookie
		for _, ck := range resp.Result().Cookies() {
			if ck.Name == handlers.SessionCookie {
				session = ck
			}
		}
		if session == nil {
			t.Fatal("session cookie is not set")
		}
		if !session.HttpOnly {
			t.Error("session cookie should be HttpOnly")
		}
		if id := try.To(signer.Verify(auth.Session, session.Value)).OrFatal(t); id != adminUser.Id {
			t.Errorf("session user: %s", id)
		}
		if _, err := signer.Verify(auth.AccessToken, session.Value); err == nil {
			t.Error("session token is accepted as an access token")
		}
	})

	for name, email := range map[string]string{
		"wrong password":     "",
		"not a superuser":    "staff@example.com",
		"inactive superuser": "retired@example.com",
	} {
		t.Run("login is rejected: "+name, func(t *testing.T) {
			users := newUsers(adminUser, staffUser, retiredUser)
			testee := handlers.AdminLoginHandler(users, dash, newSigner(), time.Hour, "/admin/")

			password := "correct-horse"
			if email == "" {
				email, password = "admin@example.com", "battery-staple"
			}
			c, resp := httptestutil.Post(
				echo.New(), "/admin/login/", loginForm(email, password), httptestutil.Form(),
			)
			if err := testee(c); err != nil {
				t.Fatal(err)
			}
			if resp.Code != http.StatusBadRequest {
				t.Errorf("status code: %d", resp.Code)
			}
			if !strings.Contains(resp.Body.String(), "Invalid credentials") {
				t.Error("login page does not tell the failure")
			}
			for _, ck := range resp.Result().Cookies() {
				if ck.Name == handlers.SessionCookie {
					t.Error("session cookie is set")
				}
			}
		})
	}
}

func TestAdminLogoutHandler(t *testing.T) {
	testee := handlers.AdminLogoutHandler("/admin/login/")
	c, resp := httptestutil.Get(echo.New(), "/admin/logout/", httptestutil.WithCookie(sessionOf(t, adminUser)))
	if err := testee(c); err != nil {
		t.Fatal(err)
	}
	if resp.Code != http.StatusFound {
		t.Errorf("status code: %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/admin/login/" {
		t.Errorf("location: %s", loc)
	}
	cleared := false
	for _, ck := range resp.Result().Cookies() {
		if ck.Name == handlers.SessionCookie && ck.MaxAge < 0 && ck.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie is not cleared")
	}
}

func TestAdminSession(t *testing.T) {
	type when struct {
		cookie func(t *testing.T) *http.Cookie
	}
	type then struct {
		pass bool
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"active superuser passes": {
			when: when{cookie: func(t *testing.T) *http.Cookie { return sessionOf(t, adminUser) }},
			then: then{pass: true},
		},
		"no session": {
			when: when{cookie: func(t *testing.T) *http.Cookie { return nil }},
		},
		"session of a non-superuser": {
			when: when{cookie: func(t *testing.T) *http.Cookie { return sessionOf(t, staffUser) }},
		},
		"session of a deactivated superuser": {
			when: when{cookie: func(t *testing.T) *http.Cookie { return sessionOf(t, retiredUser) }},
		},
		"session of a deleted user": {
			when: when{cookie: func(t *testing.T) *http.Cookie {
				return sessionOf(t, domain.User{Id: uuid.MustParse("6f1c53c4-55e9-4d43-9d8b-1d0e6a1b00ff")})
			}},
		},
		"access token in the session cookie": {
			when: when{cookie: func(t *testing.T) *http.Cookie {
				return &http.Cookie{Name: handlers.SessionCookie, Value: tokenFor(t, auth.AccessToken, adminUser)}
			}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			opts := []httptestutil.RequestOption{}
			if ck := testcase.when.cookie(t); ck != nil {
				opts = append(opts, httptestutil.WithCookie(ck))
			}

			t.Run("page", func(t *testing.T) {
				called := false
				next := func(c echo.Context) error { called = true; return c.NoContent(http.StatusOK) }
				testee := handlers.AdminPageSession(newUsers(adminUser, staffUser, retiredUser), newSigner(), "/admin/login/")(next)

				c, resp := httptestutil.Get(echo.New(), "/admin/", opts...)
				if err := testee(c); err != nil {
					t.Fatal(err)
				}
				if called != testcase.then.pass {
					t.Errorf("next is called: %v", called)
				}
				if !testcase.then.pass {
					if resp.Code != http.StatusFound || resp.Header().Get("Location") != "/admin/login/" {
						t.Errorf("not redirected to login: %d %s", resp.Code, resp.Header().Get("Location"))
					}
				}
			})

			t.Run("api", func(t *testing.T) {
				called := false
				next := func(c echo.Context) error {
					called = true
					if _, ok := handlers.CurrentUser(c); !ok {
						t.Error("current user is not set")
					}
					return c.NoContent(http.StatusOK)
				}
				testee := handlers.AdminAPISession(newUsers(adminUser, staffUser, retiredUser), newSigner())(next)

				c, _ := httptestutil.Get(echo.New(), "/admin/api/models/", opts...)
				err := testee(c)
				if called != testcase.then.pass {
					t.Errorf("next is called: %v", called)
				}
				if testcase.then.pass {
					if err != nil {
						t.Fatal(err)
					}
					return
				}
				assertHTTPError(t, err, http.StatusUnauthorized, "")
			})
		})
	}
}

func TestAdminModelsHandler(t *testing.T) {
	registry, _ := newRegistry(newUsers())
	testee := handlers.AdminModelsHandler(registry)

	c, resp := httptestutil.Get(echo.New(), "/admin/api/models/")
	if err := testee(c); err != nil {
		t.Fatal(err)
	}
	index := apiadmin.Index{}
	if err := json.Unmarshal(resp.Body.Bytes(), &index); err != nil {
		t.Fatal(err)
	}
	if index.Title != "QR System Admin" {
		t.Errorf("title: %s", index.Title)
	}
	identities := []string{}
	for _, m := range index.Models {
		identities = append(identities, m.Identity)
	}
	expected := "user,item,apartment,client,payment_type,payment,history_type,history"
	if strings.Join(identities, ",") != expected {
		t.Errorf("models: actual = %v, expected = %s", identities, expected)
	}
}

func TestAdminListHandler(t *testing.T) {
	t.Run("it passes the query to the store and responds the page", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.items.Impl.List = func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Item], error) {
			return domain.Page[domain.Item]{
				Items: []domain.Item{{Id: 1, Title: "desk", OwnerId: adminUser.Id}},
				Total: 11, Page: q.Page, PageSize: q.PageSize,
			}, nil
		}
		testee := handlers.AdminListHandler(registry, "model")

		c, resp := httptestutil.Get(echo.New(), "/admin/api/item/?search=de&sort=title&desc=true&page=2&page_size=5")
		c.SetParamNames("model")
		c.SetParamValues("item")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		q := stores.items.Calls.List.Last()
		if q != (domain.ListQuery{Search: "de", SortBy: "title", Descending: true, Page: 2, PageSize: 5}) {
			t.Errorf("query: %+v", q)
		}

		list := apiadmin.List{}
		if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
			t.Fatal(err)
		}
		if list.Total != 11 || list.Page != 2 || list.PageSize != 5 || list.Pages != 3 || len(list.Items) != 1 {
			t.Errorf("list: %+v", list)
		}
	})

	for name, testcase := range map[string]struct {
		model  string
		target string
		err    error
		code   int
	}{
		"unknown model": {
			model: "tenant", target: "/admin/api/tenant/", code: http.StatusNotFound,
		},
		"non-integer page": {
			model: "item", target: "/admin/api/item/?page=first", code: http.StatusBadRequest,
		},
		"unsortable column": {
			model: "item", target: "/admin/api/item/?sort=owner_id",
			err:  fmt.Errorf("%w: owner_id is not sortable", domerr.ErrInvalid),
			code: http.StatusBadRequest,
		},
	} {
		t.Run("it responds error: "+name, func(t *testing.T) {
			registry, stores := newRegistry(newUsers())
			stores.items.Impl.List = func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Item], error) {
				return domain.Page[domain.Item]{}, testcase.err
			}
			testee := handlers.AdminListHandler(registry, "model")

			c, _ := httptestutil.Get(echo.New(), testcase.target)
			c.SetParamNames("model")
			c.SetParamValues(testcase.model)
			assertHTTPError(t, testee(c), testcase.code, "")
		})
	}
}

func TestAdminCreateHandler(t *testing.T) {
	t.Run("user without password is rejected", func(t *testing.T) {
		registry, _ := newRegistry(newUsers())
		testee := handlers.AdminCreateHandler(registry, "model")

		c, _ := httptestutil.Post(
			echo.New(), "/admin/api/user/",
			strings.NewReader(`{"email": "new@example.com", "full_name": "New"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("model")
		c.SetParamValues("user")
		assertHTTPError(t, testee(c), http.StatusBadRequest, "Password is required for new users")
	})

	t.Run("created record is responded with 201", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.paymentTypes.Impl.Create = func(ctx context.Context, p domain.PaymentTypeParam) (domain.PaymentType, error) {
			return domain.PaymentType{Id: 5, Name: p.Name}, nil
		}
		testee := handlers.AdminCreateHandler(registry, "model")

		c, resp := httptestutil.Post(
			echo.New(), "/admin/api/payment_type/", strings.NewReader(`{"name": "cash"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("model")
		c.SetParamValues("payment_type")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusCreated {
			t.Errorf("status code: %d", resp.Code)
		}
		got := map[string]any{}
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got["id"] != float64(5) || got["name"] != "cash" {
			t.Errorf("body: %v", got)
		}
	})

	t.Run("conflict is responded with 409", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.paymentTypes.Impl.Create = func(ctx context.Context, p domain.PaymentTypeParam) (domain.PaymentType, error) {
			return domain.PaymentType{}, fmt.Errorf("%w: name is used", domerr.ErrConflict)
		}
		testee := handlers.AdminCreateHandler(registry, "model")

		c, _ := httptestutil.Post(
			echo.New(), "/admin/api/payment_type/", strings.NewReader(`{"name": "cash"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("model")
		c.SetParamValues("payment_type")
		assertHTTPError(t, testee(c), http.StatusConflict, "")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		registry, _ := newRegistry(newUsers())
		testee := handlers.AdminCreateHandler(registry, "model")

		c, _ := httptestutil.Post(
			echo.New(), "/admin/api/payment_type/", strings.NewReader(`{"name": `),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("model")
		c.SetParamValues("payment_type")
		assertHTTPError(t, testee(c), http.StatusBadRequest, "")
	})
}

func TestAdminGetUpdateDeleteHandler(t *testing.T) {
	t.Run("get responds the record", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.items.Impl.Get = func(ctx context.Context, id int64) (domain.Item, error) {
			return domain.Item{Id: id, Title: "desk", OwnerId: adminUser.Id}, nil
		}
		testee := handlers.AdminGetHandler(registry, "model", "id")

		c, resp := httptestutil.Get(echo.New(), "/admin/api/item/9/")
		c.SetParamNames("model", "id")
		c.SetParamValues("item", "9")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		got := map[string]any{}
		if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got["id"] != float64(9) || got["owner_id"] != adminUser.Id.String() {
			t.Errorf("body: %v", got)
		}
	})

	t.Run("get with malformed key is not found", func(t *testing.T) {
		registry, _ := newRegistry(newUsers())
		testee := handlers.AdminGetHandler(registry, "model", "id")

		c, _ := httptestutil.Get(echo.New(), "/admin/api/item/nine/")
		c.SetParamNames("model", "id")
		c.SetParamValues("item", "nine")
		assertHTTPError(t, testee(c), http.StatusNotFound, "")
	})

	t.Run("update of user keeps the password when it is empty", func(t *testing.T) {
		users := newUsers(adminUser)
		users.Impl.Update = func(ctx context.Context, id uuid.UUID, p domain.UserParam) (domain.User, error) {
			return domain.User{Id: id, Email: p.Email, FullName: p.FullName, IsActive: p.IsActive}, nil
		}
		registry, _ := newRegistry(users)
		testee := handlers.AdminUpdateHandler(registry, "model", "id")

		c, resp := httptestutil.Put(
			echo.New(), "/admin/api/user/"+adminUser.Id.String()+"/",
			strings.NewReader(`{"email": "admin@example.com", "full_name": "Renamed"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("model", "id")
		c.SetParamValues("user", adminUser.Id.String())
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("status code: %d", resp.Code)
		}
		p := users.Calls.Update.Last().Param
		if p.HashedPassword != "" {
			t.Errorf("password is changed: %s", p.HashedPassword)
		}
		if !p.IsActive {
			t.Error("is_active should default to true")
		}
		if strings.Contains(resp.Body.String(), "hashed_password") {
			t.Error("hashed password is exposed")
		}
	})

	t.Run("delete responds 204", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.items.Impl.Delete = func(ctx context.Context, id int64) error { return nil }
		testee := handlers.AdminDeleteHandler(registry, "model", "id")

		c, resp := httptestutil.Delete(echo.New(), "/admin/api/item/9/")
		c.SetParamNames("model", "id")
		c.SetParamValues("item", "9")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusNoContent {
			t.Errorf("status code: %d", resp.Code)
		}
		if stores.items.Calls.Delete.Last() != 9 {
			t.Errorf("deleted: %d", stores.items.Calls.Delete.Last())
		}
	})

	t.Run("delete of missing record is not found", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.items.Impl.Delete = func(ctx context.Context, id int64) error {
			return fmt.Errorf("item %d: %w", id, domerr.ErrMissing)
		}
		testee := handlers.AdminDeleteHandler(registry, "model", "id")

		c, _ := httptestutil.Delete(echo.New(), "/admin/api/item/9/")
		c.SetParamNames("model", "id")
		c.SetParamValues("item", "9")
		assertHTTPError(t, testee(c), http.StatusNotFound, "")
	})
}

func TestAdminPages(t *testing.T) {
	dash := try.To(admin.NewDashboard()).OrFatal(t)

	t.Run("index links models", func(t *testing.T) {
		registry, _ := newRegistry(newUsers())
		testee := handlers.AdminIndexHandler(registry, dash)

		c, resp := httptestutil.Get(echo.New(), "/admin/")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(resp.Body.String(), `href="/admin/apartment/"`) {
			t.Error("index does not link apartments")
		}
	})

	t.Run("list page shows records", func(t *testing.T) {
		registry, stores := newRegistry(newUsers())
		stores.paymentTypes.Impl.List = func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.PaymentType], error) {
			return domain.Page[domain.PaymentType]{
				Items: []domain.PaymentType{{Id: 1, Name: "installment"}},
				Total: 1, Page: q.Page, PageSize: q.PageSize,
			}, nil
		}
		testee := handlers.AdminListPageHandler(registry, dash, "model")

		c, resp := httptestutil.Get(echo.New(), "/admin/payment_type/")
		c.SetParamNames("model")
		c.SetParamValues("payment_type")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(resp.Body.String(), "<td>installment</td>") {
			t.Error("list page does not show the record")
		}
	})
}
