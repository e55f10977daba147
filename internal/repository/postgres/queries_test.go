package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/repository"
)

type QueriesTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *Store
	uow    repository.UnitOfWork
	acme   *domain.Tenant
	globex *domain.Tenant
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newTestStore(s.T())
	s.acme = newTenant("ACME")
	s.globex = newTenant("GLOBEX")
	seed(s.T(), s.store, func(uow *unitOfWork) {
		uow.Tenants().Add(s.acme)
		uow.Tenants().Add(s.globex)
	})
	s.uow = s.store.NewUnitOfWork()
}

func (s *QueriesTestSuite) TearDownTest() {
	s.NoError(s.uow.Close())
}

func TestQueries(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) seedCustomers(tenantID uuid.UUID, n int, mutate func(i int, c *domain.Customer)) []*domain.Customer {
	customers := make([]*domain.Customer, n)
	seed(s.T(), s.store, func(uow *unitOfWork) {
		for i := range customers {
			c := newCustomer(tenantID, fmt.Sprintf("C-%03d", i+1), baseTime.Add(time.Duration(i)*time.Minute))
			if mutate != nil {
				mutate(i, c)
			}
			customers[i] = c
			uow.Customers().Add(c)
		}
	})
	return customers
}

func (s *QueriesTestSuite) TestCustomerPaging_SecondPageHoldsRemainder() {
	s.seedCustomers(s.acme.ID, 15, nil)
	s.seedCustomers(s.globex.ID, 3, nil)

	page, err := s.uow.Customers().GetPaged(s.ctx, domain.CustomerFilter{
		PageRequest: domain.PageRequest{PageNumber: 2, PageSize: 10},
		TenantID:    s.acme.ID,
	})

	s.Require().NoError(err)
	s.Len(page.Items, 5)
	s.Equal(int64(15), page.TotalCount)
	s.Equal(2, page.PageNumber)
	s.Equal(10, page.PageSize)
}

func (s *QueriesTestSuite) TestCustomerPaging_PagesAreDisjointAndNewestFirst() {
	s.seedCustomers(s.acme.ID, 15, nil)

	seen := make(map[uuid.UUID]bool)
	var ordered []domain.Customer
	for pageNumber := 1; pageNumber <= 4; pageNumber++ {
		page, err := s.uow.Customers().GetPaged(s.ctx, domain.CustomerFilter{
			PageRequest: domain.PageRequest{PageNumber: pageNumber, PageSize: 4},
			TenantID:    s.acme.ID,
		})
		s.Require().NoError(err)
		s.Equal(int64(15), page.TotalCount)
		for _, c := range page.Items {
			s.False(seen[c.ID], "customer %s returned twice", c.CustomerCode)
			seen[c.ID] = true
		}
		ordered = append(ordered, page.Items...)
	}

	s.Len(ordered, 15)
	s.Equal("C-015", ordered[0].CustomerCode)
	s.Equal("C-001", ordered[14].CustomerCode)
	for i := 1; i < len(ordered); i++ {
		s.True(ordered[i-1].CreatedDate.After(ordered[i].CreatedDate))
	}
}

func (s *QueriesTestSuite) TestCustomerPaging_PastLastPageIsEmpty() {
	s.seedCustomers(s.acme.ID, 3, nil)

	page, err := s.uow.Customers().GetPaged(s.ctx, domain.CustomerFilter{
		PageRequest: domain.PageRequest{PageNumber: 5, PageSize: 10},
		TenantID:    s.acme.ID,
	})

	s.Require().NoError(err)
	s.Empty(page.Items)
	s.Equal(int64(3), page.TotalCount)
}

func (s *QueriesTestSuite) TestCustomerPaging_FiltersCombineWithAnd() {
	s.seedCustomers(s.acme.ID, 6, func(i int, c *domain.Customer) {
		if i%2 == 0 {
			c.Segment = "enterprise"
		}
		if i < 3 {
			c.Status = domain.StatusBlocked
		}
		if i == 0 {
			c.CustomerType = domain.CustomerTypeCorporate
			c.CompanyName = "Acme Widgets"
		}
	})

	page, err := s.uow.Customers().GetPaged(s.ctx, domain.CustomerFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 10},
		TenantID:    s.acme.ID,
		Status:      domain.StatusBlocked,
		Segment:     "enterprise",
	})
	s.Require().NoError(err)
	s.Equal(int64(2), page.TotalCount)
	for _, c := range page.Items {
		s.Equal(domain.StatusBlocked, c.Status)
		s.Equal("enterprise", c.Segment)
	}

	page, err = s.uow.Customers().GetPaged(s.ctx, domain.CustomerFilter{
		PageRequest:  domain.PageRequest{PageNumber: 1, PageSize: 10},
		TenantID:     s.acme.ID,
		SearchTerm:   "WIDGETS",
		CustomerType: domain.CustomerTypeCorporate,
	})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("C-001", page.Items[0].CustomerCode)
}

func (s *QueriesTestSuite) TestCustomerSearch_IgnoresCaseAndStaysInTenant() {
	s.seedCustomers(s.acme.ID, 2, func(i int, c *domain.Customer) {
		if i == 0 {
			c.LastName = "O'Connor"
		}
	})
	s.seedCustomers(s.globex.ID, 1, func(_ int, c *domain.Customer) {
		c.LastName = "OCONNOR"
	})

	results, err := s.uow.Customers().Search(s.ctx, s.acme.ID, "o'connor")

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(s.acme.ID, results[0].TenantID)
}

func (s *QueriesTestSuite) TestCustomerSearch_TreatsWildcardsLiterally() {
	s.seedCustomers(s.acme.ID, 3, func(i int, c *domain.Customer) {
		if i == 1 {
			c.CompanyName = "100% Juice"
		}
	})

	results, err := s.uow.Customers().Search(s.ctx, s.acme.ID, "%")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("100% Juice", results[0].CompanyName)

	results, err = s.uow.Customers().Search(s.ctx, s.acme.ID, "_")
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *QueriesTestSuite) TestCustomerSearch_EmptyTermReturnsTenantCustomers() {
	s.seedCustomers(s.acme.ID, 4, nil)

	results, err := s.uow.Customers().Search(s.ctx, s.acme.ID, "  ")

	s.NoError(err)
	s.Len(results, 4)
}

func (s *QueriesTestSuite) TestCustomerIsCodeUnique() {
	customers := s.seedCustomers(s.acme.ID, 1, nil)
	existing := customers[0]

	taken, err := s.uow.Customers().IsCodeUnique(s.ctx, s.acme.ID, existing.CustomerCode, nil)
	s.NoError(err)
	s.False(taken)

	self, err := s.uow.Customers().IsCodeUnique(s.ctx, s.acme.ID, existing.CustomerCode, &existing.ID)
	s.NoError(err)
	s.True(self)

	otherTenant, err := s.uow.Customers().IsCodeUnique(s.ctx, s.globex.ID, existing.CustomerCode, nil)
	s.NoError(err)
	s.True(otherTenant)

	free, err := s.uow.Customers().IsCodeUnique(s.ctx, s.acme.ID, "C-999", nil)
	s.NoError(err)
	s.True(free)
}

func (s *QueriesTestSuite) TestCustomerDuplicateCodeIsRejectedByStore() {
	s.seedCustomers(s.acme.ID, 1, nil)

	s.uow.Customers().Add(newCustomer(s.acme.ID, "C-001", baseTime))
	_, err := s.uow.SaveChanges(s.ctx)

	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *QueriesTestSuite) TestCustomerSoftDelete_ExcludedFromActive() {
	customers := s.seedCustomers(s.acme.ID, 3, func(i int, c *domain.Customer) {
		if i == 2 {
			c.Status = domain.StatusBlocked
		}
	})

	target, err := s.uow.Customers().GetByID(s.ctx, customers[0].ID)
	s.Require().NoError(err)
	target.Deactivate()
	s.uow.Customers().Update(target)
	_, err = s.uow.SaveChanges(s.ctx)
	s.Require().NoError(err)

	stored, err := s.uow.Customers().GetByID(s.ctx, target.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.False(stored.IsActive)
	s.Equal(domain.StatusInactive, stored.Status)

	active, err := s.uow.Customers().GetActive(s.ctx, s.acme.ID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(customers[1].ID, active[0].ID)
}

func (s *QueriesTestSuite) TestCustomerLookups() {
	customers := s.seedCustomers(s.acme.ID, 2, nil)

	byCode, err := s.uow.Customers().GetByCode(s.ctx, s.acme.ID, "C-002")
	s.Require().NoError(err)
	s.Require().NotNil(byCode)
	s.Equal(customers[1].ID, byCode.ID)

	missing, err := s.uow.Customers().GetByCode(s.ctx, s.globex.ID, "C-002")
	s.NoError(err)
	s.Nil(missing)

	byEmail, err := s.uow.Customers().GetByEmail(s.ctx, s.acme.ID, "C-001@CUSTOMERS.TEST")
	s.Require().NoError(err)
	s.Require().Len(byEmail, 1)
	s.Equal(customers[0].ID, byEmail[0].ID)

	all, err := s.uow.Customers().GetByTenantID(s.ctx, s.acme.ID)
	s.NoError(err)
	s.Len(all, 2)
}

func (s *QueriesTestSuite) TestTenantQueries() {
	blocked := newTenant("INITECH")
	blocked.Status = domain.StatusBlocked
	seed(s.T(), s.store, func(uow *unitOfWork) { uow.Tenants().Add(blocked) })

	byCode, err := s.uow.Tenants().GetByCode(s.ctx, "GLOBEX")
	s.Require().NoError(err)
	s.Require().NotNil(byCode)
	s.Equal(s.globex.ID, byCode.ID)

	byEmail, err := s.uow.Tenants().GetByContactEmail(s.ctx, "ACME@example.com")
	s.Require().NoError(err)
	s.Require().Len(byEmail, 1)
	s.Equal(s.acme.ID, byEmail[0].ID)

	active, err := s.uow.Tenants().GetActive(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 2)

	found, err := s.uow.Tenants().Search(s.ctx, "init")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(blocked.ID, found[0].ID)

	unique, err := s.uow.Tenants().IsCodeUnique(s.ctx, "ACME", nil)
	s.NoError(err)
	s.False(unique)
	unique, err = s.uow.Tenants().IsCodeUnique(s.ctx, "ACME", &s.acme.ID)
	s.NoError(err)
	s.True(unique)

	page, err := s.uow.Tenants().GetPaged(s.ctx, domain.TenantFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 2},
		Status:      domain.StatusActive,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), page.TotalCount)
	s.Len(page.Items, 2)
}

func (s *QueriesTestSuite) TestUserQueries() {
	alice := newUser(s.acme.ID, "alice@acme.test")
	bob := newUser(s.acme.ID, "bob@acme.test")
	bob.IsActive = false
	outsider := newUser(s.globex.ID, "alice@acme.test")
	seed(s.T(), s.store, func(uow *unitOfWork) {
		uow.Users().Add(alice)
		uow.Users().Add(bob)
		uow.Users().Add(outsider)
	})

	byEmail, err := s.uow.Users().GetByEmail(s.ctx, s.acme.ID, "ALICE@acme.test")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal(alice.ID, byEmail.ID)

	unique, err := s.uow.Users().IsEmailUnique(s.ctx, s.acme.ID, "Alice@Acme.Test", nil)
	s.NoError(err)
	s.False(unique)
	unique, err = s.uow.Users().IsEmailUnique(s.ctx, s.acme.ID, "alice@acme.test", &alice.ID)
	s.NoError(err)
	s.True(unique)

	active, err := s.uow.Users().GetActive(s.ctx, s.acme.ID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(alice.ID, active[0].ID)

	found, err := s.uow.Users().Search(s.ctx, s.acme.ID, "BOB")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(bob.ID, found[0].ID)

	inactive := false
	page, err := s.uow.Users().GetPaged(s.ctx, domain.UserFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 10},
		TenantID:    s.acme.ID,
		IsActive:    &inactive,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), page.TotalCount)
	s.Equal(bob.ID, page.Items[0].ID)

	all, err := s.uow.Users().GetByTenantID(s.ctx, s.acme.ID)
	s.NoError(err)
	s.Len(all, 2)
}

func (s *QueriesTestSuite) TestUserRoleQueries() {
	user := newUser(s.acme.ID, "alice@acme.test")
	roleA, roleB := uuid.New(), uuid.New()
	seed(s.T(), s.store, func(uow *unitOfWork) {
		uow.Users().Add(user)
		uow.UserRoles().Add(&domain.UserRole{UserID: user.ID, RoleID: roleA})
		uow.UserRoles().Add(&domain.UserRole{UserID: user.ID, RoleID: roleB})
	})

	exists, err := s.uow.UserRoles().Exists(s.ctx, user.ID, roleA)
	s.NoError(err)
	s.True(exists)
	exists, err = s.uow.UserRoles().Exists(s.ctx, user.ID, uuid.New())
	s.NoError(err)
	s.False(exists)

	page, err := s.uow.UserRoles().GetPaged(s.ctx, domain.UserRoleFilter{
		PageRequest: domain.PageRequest{PageNumber: 1, PageSize: 1},
		UserID:      user.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), page.TotalCount)
	s.Len(page.Items, 1)

	s.uow.UserRoles().Add(&domain.UserRole{UserID: user.ID, RoleID: roleA})
	_, err = s.uow.SaveChanges(s.ctx)
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}
