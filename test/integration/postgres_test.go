package integration

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/internal/repository/postgres"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
	"github.com/kingrain94/notes-api/pkg/token"
)

const (
	pgUser     = "notes"
	pgPassword = "notes"
	pgDatabase = "notes"
)

// PostgresSuite runs the services against a real database so the row locks
// and unique constraints take part.
type PostgresSuite struct {
	suite.Suite

	container testcontainers.Container
	db        *gorm.DB
	repo      repository.Repository

	tenants     *service.TenantService
	invitations *service.InvitationService
	accounts    *service.AccountService
	admin       *service.AdminService
	notes       *service.NoteService
	quota       *service.QuotaService
	sessions    *service.SessionService
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, url.QueryEscape(pgPassword), host, port.Port(), pgDatabase)
	s.db, err = config.OpenPostgres(dsn, config.DefaultConnectionPoolConfig(), gormlogger.Silent)
	s.Require().NoError(err)
	s.Require().NoError(postgres.ApplyMigrations(s.db))

	s.repo = postgres.NewPostgresRepository(&config.DatabaseConnections{Writer: s.db, Reader: s.db})

	log := logger.NewNop()
	tokens, err := token.NewManager("integration-secret", time.Hour, "notes-api")
	s.Require().NoError(err)
	hasher := cryptox.NewBcryptHasher(4)

	s.sessions = service.NewSessionService(s.repo, tokens, log)
	s.quota = service.NewQuotaService(s.repo, log)
	s.invitations = service.NewInvitationService(s.repo, s.sessions, hasher, service.InvitationConfig{
		TTL:         time.Hour,
		FrontendURL: "http://localhost:3000",
	}, log)
	s.tenants = service.NewTenantService(s.repo, s.sessions, hasher, log)
	s.accounts = service.NewAccountService(s.repo, s.sessions, hasher, log)
	s.admin = service.NewAdminService(s.repo, s.invitations, nopExportQueue{}, log)
	s.notes = service.NewNoteService(s.repo, s.quota, log)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE notes, tenant_invitations, users, tenants CASCADE").Error)
}

type nopExportQueue struct{}

func (nopExportQueue) SendExportMessage(context.Context, string, string) error { return nil }

func (s *PostgresSuite) registerTenant(name, email string) *service.Session {
	session, err := s.tenants.Register(context.Background(), dto.RegisterTenantRequest{
		OrganizationName: name,
		AdminEmail:       email,
		AdminPassword:    "password",
	})
	s.Require().NoError(err)
	return session
}

func (s *PostgresSuite) inviteAndAccept(admin *domain.User, email string, role domain.Role) *service.Session {
	ctx := context.Background()
	issued, err := s.invitations.Issue(ctx, admin, dto.InviteUserRequest{Email: email, Role: string(role)})
	s.Require().NoError(err)

	link, err := url.Parse(issued.Link)
	s.Require().NoError(err)

	session, err := s.invitations.Accept(ctx, dto.RegisterRequest{
		Email:           email,
		Password:        "password",
		InvitationToken: link.Query().Get("invite"),
	})
	s.Require().NoError(err)
	return session
}

func (s *PostgresSuite) TestAcmeWalkthrough() {
	ctx := context.Background()

	acme := s.registerTenant("Acme Corp", "admin@acme.test")
	s.Equal("acme-corp", acme.Tenant.Slug)
	s.Equal(domain.PlanFree, acme.Tenant.SubscriptionPlan)
	admin := acme.User

	bob := s.inviteAndAccept(admin, "bob@acme.test", domain.RoleMember).User
	s.Equal(domain.RoleMember, bob.Role)
	s.Equal("acme-corp", bob.TenantSlug)

	// the session token resolves back to the stored user
	verified, err := s.sessions.Verify(ctx, "Bearer "+s.mustLogin("bob@acme.test").Token)
	s.Require().NoError(err)
	s.Equal(bob.ID, verified.ID)

	adminNote, err := s.notes.Create(ctx, admin, dto.NoteRequest{Title: "roadmap"})
	s.Require().NoError(err)
	for i := 0; i < 2; i++ {
		_, err := s.notes.Create(ctx, bob, dto.NoteRequest{Title: fmt.Sprintf("bob %d", i)})
		s.Require().NoError(err)
	}

	_, err = s.notes.Create(ctx, bob, dto.NoteRequest{Title: "one too many"})
	s.ErrorIs(err, service.ErrQuotaExceeded)

	notes, meta, err := s.notes.List(ctx, bob)
	s.Require().NoError(err)
	s.Len(notes, 2)
	s.True(meta.LimitReached)

	_, err = s.notes.Get(ctx, bob, adminNote.ID)
	s.ErrorIs(err, service.ErrNotFound)

	_, err = s.quota.Upgrade(ctx, bob, "acme-corp")
	s.ErrorIs(err, service.ErrForbidden)

	tenant, err := s.quota.Upgrade(ctx, admin, "acme-corp")
	s.Require().NoError(err)
	s.Equal(domain.PlanPro, tenant.SubscriptionPlan)

	_, err = s.notes.Create(ctx, bob, dto.NoteRequest{Title: "now allowed"})
	s.Require().NoError(err)

	var blocked *service.QuotaBlockedError
	_, err = s.quota.Downgrade(ctx, admin, "acme-corp")
	s.Require().True(errors.As(err, &blocked))
	s.Equal(int64(4), blocked.Count)

	// a foreign admin sees nothing of acme
	globex := s.registerTenant("Globex", "admin@globex.test").User
	_, err = s.notes.Get(ctx, globex, adminNote.ID)
	s.ErrorIs(err, service.ErrNotFound)
	_, err = s.quota.Upgrade(ctx, globex, "acme-corp")
	s.ErrorIs(err, service.ErrForbidden)

	// removing bob cascades his notes and invalidates his session
	s.Require().NoError(s.admin.RemoveUser(ctx, admin, bob.ID))
	_, err = s.sessions.Verify(ctx, "Bearer "+acmeToken(s, bob))
	s.ErrorIs(err, service.ErrUnauthenticated)

	count, err := s.repo.Note().CountByTenant(ctx, "acme-corp")
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func acmeToken(s *PostgresSuite, u *domain.User) string {
	signed, err := s.sessions.Issue(u)
	s.Require().NoError(err)
	return signed
}

func (s *PostgresSuite) mustLogin(email string) *service.Session {
	session, err := s.accounts.Login(context.Background(), dto.LoginRequest{Email: email, Password: "password"})
	s.Require().NoError(err)
	return session
}

func (s *PostgresSuite) TestConcurrentRegistrationsGetDistinctSlugs() {
	const n = 6
	slugs := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, err := s.tenants.Register(context.Background(), dto.RegisterTenantRequest{
				OrganizationName: "Initech",
				AdminEmail:       fmt.Sprintf("admin%d@initech.test", i),
				AdminPassword:    "password",
			})
			errs[i] = err
			if err == nil {
				slugs[i] = session.Tenant.Slug
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		s.Require().NoError(errs[i])
		s.True(strings.HasPrefix(slugs[i], "initech"), slugs[i])
		s.False(seen[slugs[i]], "duplicate slug %s", slugs[i])
		seen[slugs[i]] = true
	}
}

func (s *PostgresSuite) TestInvitationRedeemedOnce() {
	ctx := context.Background()
	admin := s.registerTenant("Acme Corp", "admin@acme.test").User

	issued, err := s.invitations.Issue(ctx, admin, dto.InviteUserRequest{Email: "carol@acme.test"})
	s.Require().NoError(err)
	link, err := url.Parse(issued.Link)
	s.Require().NoError(err)
	tok := link.Query().Get("invite")

	const n = 5
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.invitations.Accept(context.Background(), dto.RegisterRequest{
				Email:           "carol@acme.test",
				Password:        "password",
				InvitationToken: tok,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errors.Is(err, service.ErrInvalidOrExpiredInvitation) || errors.Is(err, service.ErrConflict), err.Error())
	}
	s.Equal(1, succeeded)

	pending, err := s.invitations.ListPending(ctx, admin.TenantSlug)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *PostgresSuite) TestFreeQuotaHoldsUnderConcurrency() {
	admin := s.registerTenant("Acme Corp", "admin@acme.test").User

	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.notes.Create(context.Background(), admin, dto.NoteRequest{Title: fmt.Sprintf("note %d", i)})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		s.ErrorIs(err, service.ErrQuotaExceeded)
	}
	s.Equal(int(domain.FreePlanNoteLimit), created)

	count, err := s.repo.Note().CountByTenant(context.Background(), admin.TenantSlug)
	s.Require().NoError(err)
	s.Equal(int64(domain.FreePlanNoteLimit), count)
}

func (s *PostgresSuite) TestExpiredInvitationRejected() {
	ctx := context.Background()
	admin := s.registerTenant("Acme Corp", "admin@acme.test").User

	issued, err := s.invitations.Issue(ctx, admin, dto.InviteUserRequest{Email: "dave@acme.test"})
	s.Require().NoError(err)
	s.Require().NoError(s.db.Exec(
		"UPDATE tenant_invitations SET expires_at = now() - interval '1 minute' WHERE id = ?",
		issued.Invitation.ID,
	).Error)

	link, err := url.Parse(issued.Link)
	s.Require().NoError(err)
	_, err = s.invitations.Accept(ctx, dto.RegisterRequest{
		Email:           "dave@acme.test",
		Password:        "password",
		InvitationToken: link.Query().Get("invite"),
	})
	s.ErrorIs(err, service.ErrInvalidOrExpiredInvitation)

	// an expired invitation no longer blocks a fresh one
	_, err = s.invitations.Issue(ctx, admin, dto.InviteUserRequest{Email: "dave@acme.test"})
	s.NoError(err)
}
