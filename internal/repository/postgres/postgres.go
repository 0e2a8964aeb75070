package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	tenantRepo     repository.TenantRepository
	userRepo       repository.UserRepository
	invitationRepo repository.InvitationRepository
	noteRepo       repository.NoteRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:       writerDB,
		readerDB:       readerDB,
		tenantRepo:     NewTenantRepository(writerDB, readerDB),
		userRepo:       NewUserRepository(writerDB, readerDB),
		invitationRepo: NewInvitationRepository(writerDB, readerDB),
		noteRepo:       NewNoteRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Invitation() repository.InvitationRepository {
	return r.invitationRepo
}

func (r *postgresRepository) Note() repository.NoteRepository {
	return r.noteRepo
}

// Transaction binds reader and writer to the same tx so reads inside fn see its writes
func (r *postgresRepository) Transaction(ctx context.Context, fn func(tx repository.Repository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}
