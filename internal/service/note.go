package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/authz"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// NoteService is note CRUD under tenant and role constraints. Notes the actor
// may not see are reported as not found, never as forbidden.
type NoteService struct {
	repo  repository.Repository
	quota *QuotaService
	log   *logger.Logger
	now   func() time.Time
}

func NewNoteService(repo repository.Repository, quota *QuotaService, log *logger.Logger) *NoteService {
	return &NoteService{
		repo:  repo,
		quota: quota,
		log:   log,
		now:   time.Now,
	}
}

func (s *NoteService) List(ctx context.Context, actor *domain.User) ([]domain.Note, *domain.NoteListMeta, error) {
	scope, err := authz.NoteScope(authz.SubjectFromUser(actor))
	if err != nil {
		return nil, nil, forbidden(err)
	}

	notes, err := s.repo.Note().List(ctx, scope)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list notes: %w", err)
	}

	usage, err := s.quota.Usage(ctx, actor.TenantSlug)
	if err != nil {
		return nil, nil, err
	}

	return notes, &domain.NoteListMeta{
		Total:            len(notes),
		SubscriptionPlan: usage.Plan,
		LimitReached:     usage.LimitReached,
		UserRole:         actor.Role,
	}, nil
}

func (s *NoteService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Note, error) {
	return s.load(ctx, actor, authz.ActionRead, id)
}

// Create stamps the actor as author and inserts under the quota lock
func (s *NoteService) Create(ctx context.Context, actor *domain.User, req dto.NoteRequest) (*domain.Note, error) {
	title, content, err := validateNote(req)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		Title:      title,
		Content:    content,
		UserID:     actor.ID,
		TenantSlug: actor.TenantSlug,
	}
	if err := authz.Authorize(authz.SubjectFromUser(actor), authz.ActionCreate, authz.NoteResource(note)); err != nil {
		return nil, forbidden(err)
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if err := s.quota.ReserveNote(ctx, tx, actor.TenantSlug); err != nil {
			return err
		}
		if err := tx.Note().Create(ctx, note); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	note.AuthorEmail = actor.Email
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, actor *domain.User, id string, req dto.NoteRequest) (*domain.Note, error) {
	title, content, err := validateNote(req)
	if err != nil {
		return nil, err
	}

	note, err := s.load(ctx, actor, authz.ActionUpdate, id)
	if err != nil {
		return nil, err
	}

	scope, _ := authz.NoteScope(authz.SubjectFromUser(actor))
	updated, err := s.repo.Note().Update(ctx, scope, note.ID, title, content, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, actor *domain.User, id string) error {
	note, err := s.load(ctx, actor, authz.ActionDelete, id)
	if err != nil {
		return err
	}

	scope, _ := authz.NoteScope(authz.SubjectFromUser(actor))
	if err := s.repo.Note().Delete(ctx, scope, note.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.log.Info("note deleted", logger.TenantSlug(actor.TenantSlug), logger.UserID(actor.ID), logger.NoteID(note.ID))
	return nil
}

// load fetches a note through the actor's scope and confirms the action on it
func (s *NoteService) load(ctx context.Context, actor *domain.User, action authz.Action, id string) (*domain.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNoteNotFound
	}

	subject := authz.SubjectFromUser(actor)
	scope, err := authz.NoteScope(subject)
	if err != nil {
		return nil, forbidden(err)
	}

	note, err := s.repo.Note().Get(ctx, scope, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to load note: %w", err)
	}

	if err := authz.Authorize(subject, action, authz.NoteResource(note)); err != nil {
		s.log.Warn("note access denied", logger.UserID(actor.ID), logger.NoteID(id))
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func validateNote(req dto.NoteRequest) (string, string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", "", validationError("title is required")
	}
	if utf8.RuneCountInString(title) > domain.NoteTitleMaxLength {
		return "", "", validationError("title must be at most %d characters", domain.NoteTitleMaxLength)
	}
	if utf8.RuneCountInString(req.Content) > domain.NoteContentMaxLength {
		return "", "", validationError("content must be at most %d characters", domain.NoteContentMaxLength)
	}
	return title, req.Content, nil
}
