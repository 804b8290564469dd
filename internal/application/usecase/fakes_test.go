package usecase_test

import (
	"context"

	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// Identidades compartidas por los tests de casos de uso.
const (
	tokenAna   = "https://clerk.example.com|user_ana"
	tokenBruno = "https://clerk.example.com|user_bruno"
	orgAcme    = "org_acme"
	orgGlobex  = "org_globex"
)

func callerWith(token string) access.Caller {
	return access.Caller{TokenIdentifier: token}
}

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByTokenIdentifier(tokenIdentifier string) (*entity.User, error) {
	for _, u := range f.users {
		if u.TokenIdentifier == tokenIdentifier {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, cur := range f.users {
		if cur.ID == u.ID {
			f.users[i] = u
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateMemberships(id string, orgIDs []entity.OrgMembership) error {
	for _, u := range f.users {
		if u.ID == id {
			u.OrgIDs = orgIDs
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	return f.users, nil
}

// seedUser añade un usuario con las membresías indicadas y lo devuelve.
func (f *fakeUserRepo) seedUser(id, tokenIdentifier string, orgIDs ...entity.OrgMembership) *entity.User {
	if orgIDs == nil {
		orgIDs = []entity.OrgMembership{}
	}
	u := &entity.User{
		ID:              id,
		TokenIdentifier: tokenIdentifier,
		Name:            "Usuario " + id,
		Status:          entity.UserActive,
		OrgIDs:          orgIDs,
	}
	f.users = append(f.users, u)
	return u
}

// fakeOrgRepo implementa repository.OrganizationRepository en memoria.
type fakeOrgRepo struct {
	orgs []*entity.Organization
}

func (f *fakeOrgRepo) Create(o *entity.Organization) error {
	f.orgs = append(f.orgs, o)
	return nil
}

func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) GetByClerkOrgID(clerkOrgID string) (*entity.Organization, error) {
	for _, o := range f.orgs {
		if o.ClerkOrgID == clerkOrgID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) Update(o *entity.Organization) error {
	for i, cur := range f.orgs {
		if cur.ID == o.ID {
			f.orgs[i] = o
			return nil
		}
	}
	return nil
}

func (f *fakeOrgRepo) Delete(id string) error {
	kept := f.orgs[:0]
	for _, o := range f.orgs {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	f.orgs = kept
	return nil
}

// fakeCategoryRepo implementa repository.CategoryRepository en memoria.
type fakeCategoryRepo struct {
	cats []*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.cats = append(f.cats, c)
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range f.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) ListByOrg(orgID string) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range f.cats {
		if c.OrgID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, cur := range f.cats {
		if cur.ID == c.ID {
			f.cats[i] = c
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	kept := f.cats[:0]
	for _, c := range f.cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.cats = kept
	return nil
}

func (f *fakeCategoryRepo) HasChildren(id string) (bool, error) {
	for _, c := range f.cats {
		if c.ParentCategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

// fakeItemRepo implementa repository.ItemRepository en memoria.
type fakeItemRepo struct {
	items []*entity.Item
}

func (f *fakeItemRepo) Create(it *entity.Item) error {
	f.items = append(f.items, it)
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) ListByOrg(orgID string) ([]*entity.Item, error) {
	out := []*entity.Item{}
	for _, it := range f.items {
		if it.OrgID == orgID && it.DeletedAt == nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(it *entity.Item) error {
	for i, cur := range f.items {
		if cur.ID == it.ID {
			f.items[i] = it
			return nil
		}
	}
	return nil
}

func (f *fakeItemRepo) ExistsByCategory(categoryID string) (bool, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID && it.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

// fakeItemHistoryRepo implementa repository.ItemHistoryRepository en memoria.
type fakeItemHistoryRepo struct {
	entries []*entity.ItemHistory
}

func (f *fakeItemHistoryRepo) Append(h *entity.ItemHistory) error {
	f.entries = append(f.entries, h)
	return nil
}

func (f *fakeItemHistoryRepo) ListByItem(itemID string) ([]*entity.ItemHistory, error) {
	out := []*entity.ItemHistory{}
	for _, h := range f.entries {
		if h.ItemID == itemID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeSaleRepo implementa repository.SaleRepository en memoria.
type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) ListByOrg(orgID, startDate, endDate string) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range f.sales {
		if s.OrgID != orgID {
			continue
		}
		if startDate != "" && s.Date < startDate {
			continue
		}
		if endDate != "" && s.Date > endDate {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// fakeSaleItemRepo implementa repository.SaleItemRepository en memoria.
type fakeSaleItemRepo struct {
	lines []*entity.SaleItem
}

func (f *fakeSaleItemRepo) Create(l *entity.SaleItem) error {
	f.lines = append(f.lines, l)
	return nil
}

func (f *fakeSaleItemRepo) GetByID(id string) (*entity.SaleItem, error) {
	for _, l := range f.lines {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleItemRepo) ListBySale(saleID string) ([]*entity.SaleItem, error) {
	out := []*entity.SaleItem{}
	for _, l := range f.lines {
		if l.SaleID == saleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeSaleItemRepo) Update(l *entity.SaleItem) error {
	for i, cur := range f.lines {
		if cur.ID == l.ID {
			f.lines[i] = l
			return nil
		}
	}
	return nil
}

func (f *fakeSaleItemRepo) Delete(id string) error {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	return nil
}

// fakeNotificationRepo implementa repository.NotificationRepository en memoria.
type fakeNotificationRepo struct {
	notifs []*entity.Notification
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	f.notifs = append(f.notifs, n)
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for _, n := range f.notifs {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	out := []*entity.Notification{}
	for _, n := range f.notifs {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id string) error {
	for _, n := range f.notifs {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(id string) error {
	kept := f.notifs[:0]
	for _, n := range f.notifs {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.notifs = kept
	return nil
}

// fakeSettingsRepo implementa repository.SettingsRepository en memoria.
type fakeSettingsRepo struct {
	rows []*entity.Settings
}

func (f *fakeSettingsRepo) Create(s *entity.Settings) error {
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakeSettingsRepo) GetByID(id string) (*entity.Settings, error) {
	for _, s := range f.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSettingsRepo) GetByOrg(orgID string) (*entity.Settings, error) {
	for _, s := range f.rows {
		if s.OrgID == orgID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSettingsRepo) Update(s *entity.Settings) error {
	for i, cur := range f.rows {
		if cur.ID == s.ID {
			f.rows[i] = s
			return nil
		}
	}
	return nil
}

// fakeReportRepo implementa repository.ReportRepository en memoria.
type fakeReportRepo struct {
	reports []*entity.Report
}

func (f *fakeReportRepo) Create(r *entity.Report) error {
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeReportRepo) GetByID(id string) (*entity.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) ListByOrg(orgID string) ([]*entity.Report, error) {
	out := []*entity.Report{}
	for _, r := range f.reports {
		if r.OrgID == orgID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) Update(r *entity.Report) error {
	for i, cur := range f.reports {
		if cur.ID == r.ID {
			f.reports[i] = r
			return nil
		}
	}
	return nil
}

func (f *fakeReportRepo) Delete(id string) error {
	kept := f.reports[:0]
	for _, r := range f.reports {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.reports = kept
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de transacciones y PDF
// ──────────────────────────────────────────────────────────────────────────────

// fakeTx ejecuta los callbacks transaccionales directamente sobre los fakes.
// No emula rollback: los tests de abort verifican el error devuelto.
type fakeTx struct {
	items         *fakeItemRepo
	history       *fakeItemHistoryRepo
	sales         *fakeSaleRepo
	notifications *fakeNotificationRepo
}

func (f *fakeTx) RunItems(_ context.Context, fn func(
	items repository.ItemRepository,
	history repository.ItemHistoryRepository,
) error) error {
	return fn(f.items, f.history)
}

func (f *fakeTx) RunSales(_ context.Context, fn func(
	sales repository.SaleRepository,
	notifications repository.NotificationRepository,
) error) error {
	return fn(f.sales, f.notifications)
}

// fakePDFGenerator registra los argumentos y devuelve un PDF fijo.
type fakePDFGenerator struct {
	lastReport   *entity.Report
	lastCurrency string
	lastSummary  *dto.SalesSummaryResponse
}

func (f *fakePDFGenerator) GenerateReportPDF(_ context.Context, report *entity.Report, currency string, summary *dto.SalesSummaryResponse) ([]byte, error) {
	f.lastReport = report
	f.lastCurrency = currency
	f.lastSummary = summary
	return []byte("%PDF-1.7 fake"), nil
}
