package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	bindrecords "github.com/opst/aptsales/pkg/api-types-binding/records"
	apiadmin "github.com/opst/aptsales/pkg/api/types/admin"
	apirecords "github.com/opst/aptsales/pkg/api/types/records"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain"
	kdbapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	"github.com/opst/aptsales/pkg/domain/aptsales"
	kdbclient "github.com/opst/aptsales/pkg/domain/client/db"
	kdbhistory "github.com/opst/aptsales/pkg/domain/history/db"
	kdbitem "github.com/opst/aptsales/pkg/domain/item/db"
	kdbpayment "github.com/opst/aptsales/pkg/domain/payment/db"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
	xe "github.com/opst/aptsales/pkg/errors"
)

// Title of the admin dashboard.
const Title = "QR System Admin"

var ErrPasswordRequired = errors.New("Password is required for new users")

// View is a model view of the admin dashboard.
type View struct {
	Identity string
	Name     string
	Plural   string
	Icon     string

	// columns shown in lists
	Columns []string
	Listing domain.Listing

	CanCreate      bool
	CanEdit        bool
	CanDelete      bool
	CanViewDetails bool

	Model Model
}

func (v *View) Meta() apiadmin.Model {
	sort := make([]apiadmin.SortKey, 0, len(v.Listing.DefaultOrder))
	for _, o := range v.Listing.DefaultOrder {
		sort = append(sort, apiadmin.SortKey{Column: o.Column, Descending: o.Descending})
	}
	return apiadmin.Model{
		Identity:       v.Identity,
		Name:           v.Name,
		Plural:         v.Plural,
		Icon:           v.Icon,
		Columns:        append([]string{}, v.Columns...),
		Searchable:     append([]string{}, v.Listing.Searchable...),
		Sortable:       append([]string{}, v.Listing.Sortable...),
		DefaultSort:    sort,
		CanCreate:      v.CanCreate,
		CanEdit:        v.CanEdit,
		CanDelete:      v.CanDelete,
		CanViewDetails: v.CanViewDetails,
	}
}

// Stores are record stores exposed in the admin dashboard.
type Stores struct {
	Users        kdbuser.UserInterface
	Items        kdbitem.ItemInterface
	Apartments   kdbapt.ApartmentInterface
	Clients      kdbclient.ClientInterface
	PaymentTypes kdbpayment.PaymentTypeInterface
	Payments     kdbpayment.PaymentInterface
	HistoryTypes kdbhistory.HistoryTypeInterface
	Histories    kdbhistory.HistoryInterface
}

func StoresOf(a aptsales.Aptsales) Stores {
	return Stores{
		Users:        a.User().Database(),
		Items:        a.Item().Database(),
		Apartments:   a.Apartment().Database(),
		Clients:      a.Client().Database(),
		PaymentTypes: a.Payment().Types(),
		Payments:     a.Payment().Database(),
		HistoryTypes: a.History().Types(),
		Histories:    a.History().Database(),
	}
}

// Registry holds model views in the order of the dashboard menu.
type Registry struct {
	views []*View
	index map[string]*View
}

func NewRegistry(s Stores) *Registry {
	views := []*View{
		{
			Identity: "user", Name: "User", Plural: "Users", Icon: "fa-solid fa-user",
			Columns: []string{"id", "email", "is_active", "is_superuser", "full_name"},
			Listing: domain.UserListing,
			Model: &storeModel[uuid.UUID, domain.User, domain.UserParam, apirecords.User, apirecords.UserForm]{
				store: s.Users, parseKey: uuidKey, compose: bindrecords.ComposeUser,
				param: userParam,
			},
		},
		{
			Identity: "item", Name: "Item", Plural: "Items", Icon: "fa-solid fa-box",
			Columns: []string{"id", "title", "description", "owner_id"},
			Listing: domain.ItemListing,
			Model: &storeModel[int64, domain.Item, domain.ItemParam, apirecords.Item, apirecords.ItemForm]{
				store: s.Items, parseKey: int64Key, compose: bindrecords.ComposeItem,
				param: func(_ context.Context, f apirecords.ItemForm, _ bool) (domain.ItemParam, error) {
					return bindrecords.ItemParam(f)
				},
			},
		},
		{
			Identity: "apartment", Name: "Apartment", Plural: "Apartments", Icon: "fa-solid fa-building",
			Columns: []string{"id", "building", "floor", "apt_no", "user_id", "area", "meter_price", "full_price"},
			Listing: domain.ApartmentListing,
			Model: &storeModel[int64, domain.Apartment, domain.ApartmentParam, apirecords.Apartment, apirecords.ApartmentForm]{
				store: s.Apartments, parseKey: int64Key, compose: bindrecords.ComposeApartment,
				param: func(_ context.Context, f apirecords.ApartmentForm, _ bool) (domain.ApartmentParam, error) {
					return bindrecords.ApartmentParam(f)
				},
			},
		},
		{
			Identity: "client", Name: "Client", Plural: "Clients", Icon: "fa-solid fa-user-group",
			Columns: []string{"id", "name", "id_no", "phone_number", "job_title", "apt_id"},
			Listing: domain.ClientListing,
			Model: &storeModel[int64, domain.Client, domain.ClientParam, apirecords.Client, apirecords.ClientForm]{
				store: s.Clients, parseKey: int64Key, compose: bindrecords.ComposeClient,
				param: infallible(bindrecords.ClientParam),
			},
		},
		{
			Identity: "payment_type", Name: "Payment Type", Plural: "Payment Types", Icon: "fa-solid fa-credit-card",
			Columns: []string{"id", "name"},
			Listing: domain.PaymentTypeListing,
			Model: &storeModel[int64, domain.PaymentType, domain.PaymentTypeParam, apirecords.PaymentType, apirecords.PaymentTypeForm]{
				store: s.PaymentTypes, parseKey: int64Key, compose: bindrecords.ComposePaymentType,
				param: infallible(bindrecords.PaymentTypeParam),
			},
		},
		{
			Identity: "payment", Name: "Payment", Plural: "Payments", Icon: "fa-solid fa-money-bill",
			Columns: []string{"id", "date_of_payment", "payment_type_id", "amount", "client_id"},
			Listing: domain.PaymentListing,
			Model: &storeModel[int64, domain.Payment, domain.PaymentParam, apirecords.Payment, apirecords.PaymentForm]{
				store: s.Payments, parseKey: int64Key, compose: bindrecords.ComposePayment,
				param: infallible(bindrecords.PaymentParam),
			},
		},
		{
			Identity: "history_type", Name: "History Type", Plural: "History Types", Icon: "fa-solid fa-list-check",
			Columns: []string{"id", "name"},
			Listing: domain.HistoryTypeListing,
			Model: &storeModel[int64, domain.HistoryType, domain.HistoryTypeParam, apirecords.HistoryType, apirecords.HistoryTypeForm]{
				store: s.HistoryTypes, parseKey: int64Key, compose: bindrecords.ComposeHistoryType,
				param: infallible(bindrecords.HistoryTypeParam),
			},
		},
		{
			Identity: "history", Name: "History Entry", Plural: "History Entries", Icon: "fa-solid fa-history",
			Columns: []string{"id", "type_id", "datetime"},
			Listing: domain.HistoryListing,
			Model: &storeModel[int64, domain.History, domain.HistoryParam, apirecords.History, apirecords.HistoryForm]{
				store: s.Histories, parseKey: int64Key, compose: bindrecords.ComposeHistory,
				param: infallible(bindrecords.HistoryParam),
			},
		},
	}

	index := map[string]*View{}
	for _, v := range views {
		v.CanCreate = true
		v.CanEdit = true
		v.CanDelete = true
		v.CanViewDetails = true
		index[v.Identity] = v
	}
	return &Registry{views: views, index: index}
}

// Views returns views in the order of the menu.
func (r *Registry) Views() []*View {
	return append([]*View{}, r.views...)
}

func (r *Registry) Lookup(identity string) (*View, bool) {
	v, ok := r.index[identity]
	return v, ok
}

func infallible[F any, P any](conv func(F) P) func(context.Context, F, bool) (P, error) {
	return func(_ context.Context, f F, _ bool) (P, error) {
		return conv(f), nil
	}
}

// userParam hashes the submitted password.
//
// The password is required on creation. On update, empty password keeps the current one.
func userParam(_ context.Context, f apirecords.UserForm, creating bool) (domain.UserParam, error) {
	hashed := ""
	if f.Password != "" {
		h, err := auth.HashPassword(f.Password)
		if err != nil {
			return domain.UserParam{}, xe.Wrap(err)
		}
		hashed = h
	} else if creating {
		return domain.UserParam{}, ErrPasswordRequired
	}
	return bindrecords.UserParam(f, hashed), nil
}
