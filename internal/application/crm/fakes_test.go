package crm_test

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByOwnerAndID(ownerID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil // ajeno e inexistente son indistinguibles
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByOwnerAndEmail(ownerID, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.OwnerID == ownerID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) matches(c *entity.Customer, ownerID, search string) bool {
	if c.OwnerID != ownerID {
		return false
	}
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), s) ||
		strings.Contains(strings.ToLower(c.Email), s) ||
		strings.Contains(strings.ToLower(c.Company), s)
}

func (r *fakeCustomerRepo) ListByOwner(ownerID string, f repository.CustomerFilter) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if r.matches(c, ownerID, f.Search) {
			cp := *c
			out = append(out, &cp)
		}
	}
	// Orden estable por fecha de creación, suficiente para los tests.
	sort.Slice(out, func(i, j int) bool {
		if f.SortDesc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeCustomerRepo) CountByOwner(ownerID, search string) (int, error) {
	n := 0
	for _, c := range r.customers {
		if r.matches(c, ownerID, search) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByCustomerAndID(customerID, leadID string) (*entity.Lead, error) {
	l, ok := r.leads[leadID]
	if !ok || l.CustomerID != customerID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) ListByCustomer(customerID string, f repository.LeadFilter) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.CustomerID != customerID {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.SortDesc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeLeadRepo) ListAllByCustomer(customerID string) ([]*entity.Lead, error) {
	return r.ListByCustomer(customerID, repository.LeadFilter{SortDesc: true})
}

func (r *fakeLeadRepo) CountByCustomer(customerID, status string) (int, error) {
	n := 0
	for _, l := range r.leads {
		if l.CustomerID == customerID && (status == "" || l.Status == status) {
			n++
		}
	}
	return n, nil
}

func (r *fakeLeadRepo) Update(l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) Delete(id string) error {
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) DeleteByCustomer(customerID string) error {
	for id, l := range r.leads {
		if l.CustomerID == customerID {
			delete(r.leads, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn contra los mismos repos fake, sin transacción real.
type fakeTxRunner struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
	calls     int
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.CustomerRepository, repository.LeadRepository) error) error {
	tx.calls++
	return fn(tx.customers, tx.leads)
}

var _ crm.TxRunner = (*fakeTxRunner)(nil)
