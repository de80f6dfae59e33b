package service

import (
	"fmt"
	"time"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/repository"
	"foxscrb-server/pkg/sanitize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type NoteService struct {
	noteRepo repository.NoteRepository
	validate *validator.Validate
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		validate: validator.New(),
	}
}

// getOwned is the ownership gate for every single-note operation, including
// archive and unarchive.
func (s *NoteService) getOwned(ownerID, id string) (*domain.Note, error) {
	note, err := s.noteRepo.FindByID(id)
	if err != nil {
		return nil, &NotFoundError{Message: "Note not found"}
	}

	if note.OwnerID != ownerID {
		return nil, &NotAuthorizedError{}
	}

	return note, nil
}

func (s *NoteService) Create(ownerID string, req *domain.NoteRequest) (*domain.Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, translateValidation(err)
	}

	note := &domain.Note{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     req.Title,
		Body:      sanitize.HTML(req.Body),
		Archived:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetOwned returns a single note for its owner, for the edit view.
func (s *NoteService) GetOwned(ownerID, id string) (*domain.Note, error) {
	return s.getOwned(ownerID, id)
}

func (s *NoteService) Update(ownerID, id string, req *domain.NoteRequest) (*domain.Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, translateValidation(err)
	}

	note, err := s.getOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Body = sanitize.HTML(req.Body)
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// List returns the owner's active notes, newest first, filtered by the
// case-insensitive search term. An empty term matches all notes.
func (s *NoteService) List(ownerID, search string) ([]*domain.Note, error) {
	notes, err := s.noteRepo.List(ownerID, search, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) ListArchived(ownerID string) ([]*domain.Note, error) {
	notes, err := s.noteRepo.List(ownerID, "", true)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Delete(ownerID, id string) error {
	if _, err := s.getOwned(ownerID, id); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func (s *NoteService) Archive(ownerID, id string) error {
	return s.setArchived(ownerID, id, true)
}

func (s *NoteService) Unarchive(ownerID, id string) error {
	return s.setArchived(ownerID, id, false)
}

func (s *NoteService) setArchived(ownerID, id string, archived bool) error {
	note, err := s.getOwned(ownerID, id)
	if err != nil {
		return err
	}

	note.Archived = archived
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(note); err != nil {
		return fmt.Errorf("failed to update note archive state: %w", err)
	}

	return nil
}
