package service

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"foxscrb-server/internal/domain"
)

// mockNoteRepo mirrors the CouchDB repository semantics: owner + archive
// state filtering, case-insensitive substring search over title and body,
// results newest first.
type mockNoteRepo struct {
	notes map[string]*domain.Note
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{
		notes: make(map[string]*domain.Note),
	}
}

func (m *mockNoteRepo) Create(note *domain.Note) error {
	copied := *note
	m.notes[note.ID] = &copied
	return nil
}

func (m *mockNoteRepo) FindByID(id string) (*domain.Note, error) {
	if n, ok := m.notes[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, errors.New("note not found")
}

func (m *mockNoteRepo) List(ownerID, search string, archived bool) ([]*domain.Note, error) {
	term := strings.ToLower(search)

	var notes []*domain.Note
	for _, n := range m.notes {
		if n.OwnerID != ownerID || n.Archived != archived {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Body), term) {
			continue
		}
		copied := *n
		notes = append(notes, &copied)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

func (m *mockNoteRepo) Update(note *domain.Note) error {
	if _, ok := m.notes[note.ID]; !ok {
		return errors.New("note not found")
	}
	copied := *note
	m.notes[note.ID] = &copied
	return nil
}

func (m *mockNoteRepo) Delete(id string) error {
	if _, ok := m.notes[id]; !ok {
		return errors.New("note not found")
	}
	delete(m.notes, id)
	return nil
}

func seedNote(repo *mockNoteRepo, id, owner, title, body string, archived bool, createdAt time.Time) {
	repo.notes[id] = &domain.Note{
		ID:        id,
		OwnerID:   owner,
		Title:     title,
		Body:      body,
		Archived:  archived,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestNoteService_Create(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	note, err := svc.Create("user-1", &domain.NoteRequest{
		Title: "T1",
		Body:  "<b>hi</b><script>x</script>",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	if note.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if note.OwnerID != "user-1" {
		t.Errorf("Create() owner = %s, want user-1", note.OwnerID)
	}
	if note.Archived {
		t.Error("Create() note should start active")
	}
	if note.CreatedAt.IsZero() {
		t.Error("Create() did not set creation time")
	}
	if !strings.Contains(note.Body, "<b>hi</b>") {
		t.Errorf("Create() body = %q, want <b>hi</b> preserved", note.Body)
	}
	if strings.Contains(note.Body, "script") {
		t.Errorf("Create() body = %q, script should be stripped", note.Body)
	}

	list, err := svc.List("user-1", "")
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}
	if len(list) != 1 || list[0].Title != "T1" {
		t.Errorf("List() = %v, want single note titled T1", list)
	}
}

func TestNoteService_CreateValidation(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	tests := []struct {
		name string
		req  *domain.NoteRequest
	}{
		{name: "missing title", req: &domain.NoteRequest{Body: "text"}},
		{name: "missing body", req: &domain.NoteRequest{Title: "T"}},
		{name: "missing both", req: &domain.NoteRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create("user-1", tt.req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Create() error = %T, want *ValidationError", err)
			}
			if len(repo.notes) != 0 {
				t.Error("Create() persisted an invalid note")
			}
		})
	}
}

func TestNoteService_ListSearch(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedNote(repo, "n1", "user-1", "Groceries", "milk and eggs", false, base)
	seedNote(repo, "n2", "user-1", "Work", "project XYZ kickoff", false, base.Add(1*time.Hour))
	seedNote(repo, "n3", "user-1", "xyz ideas", "brainstorm", false, base.Add(2*time.Hour))
	seedNote(repo, "n4", "user-1", "Old", "archived xyz", true, base.Add(3*time.Hour))
	seedNote(repo, "n5", "user-2", "Other xyz", "not mine", false, base.Add(4*time.Hour))

	t.Run("empty term returns all active newest first", func(t *testing.T) {
		notes, err := svc.List("user-1", "")
		if err != nil {
			t.Fatalf("List() unexpected error = %v", err)
		}
		gotIDs := noteIDs(notes)
		wantIDs := []string{"n3", "n2", "n1"}
		if !equalIDs(gotIDs, wantIDs) {
			t.Errorf("List() order = %v, want %v", gotIDs, wantIDs)
		}
	})

	t.Run("term matches title or body case-insensitively", func(t *testing.T) {
		notes, err := svc.List("user-1", "XyZ")
		if err != nil {
			t.Fatalf("List() unexpected error = %v", err)
		}
		gotIDs := noteIDs(notes)
		wantIDs := []string{"n3", "n2"}
		if !equalIDs(gotIDs, wantIDs) {
			t.Errorf("List() = %v, want %v", gotIDs, wantIDs)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		notes, err := svc.List("user-1", "nothing-here")
		if err != nil {
			t.Fatalf("List() unexpected error = %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("List() = %v, want empty", noteIDs(notes))
		}
	})
}

func TestNoteService_Update(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedNote(repo, "n1", "user-1", "Before", "old", false, createdAt)

	note, err := svc.Update("user-1", "n1", &domain.NoteRequest{
		Title: "After",
		Body:  "<i>new</i><script>x</script>",
	})
	if err != nil {
		t.Fatalf("Update() unexpected error = %v", err)
	}

	if note.Title != "After" {
		t.Errorf("Update() title = %s, want After", note.Title)
	}
	if strings.Contains(note.Body, "script") {
		t.Errorf("Update() body = %q, script should be stripped", note.Body)
	}
	if note.OwnerID != "user-1" {
		t.Error("Update() must not reassign the owner")
	}
	if !note.CreatedAt.Equal(createdAt) {
		t.Error("Update() must not touch the creation time")
	}
}

func TestNoteService_OwnershipGuard(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		op   func(svc *NoteService) error
	}{
		{
			name: "edit",
			op: func(svc *NoteService) error {
				_, err := svc.Update("user-2", "n1", &domain.NoteRequest{Title: "X", Body: "Y"})
				return err
			},
		},
		{
			name: "view for edit",
			op: func(svc *NoteService) error {
				_, err := svc.GetOwned("user-2", "n1")
				return err
			},
		},
		{
			name: "delete",
			op: func(svc *NoteService) error {
				return svc.Delete("user-2", "n1")
			},
		},
		{
			name: "archive",
			op: func(svc *NoteService) error {
				return svc.Archive("user-2", "n1")
			},
		},
		{
			name: "unarchive",
			op: func(svc *NoteService) error {
				return svc.Unarchive("user-2", "n1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockNoteRepo()
			svc := NewNoteService(repo)
			seedNote(repo, "n1", "user-1", "Mine", "body", false, createdAt)

			err := tt.op(svc)

			var naerr *NotAuthorizedError
			if !errors.As(err, &naerr) {
				t.Fatalf("%s by non-owner: error = %T (%v), want *NotAuthorizedError", tt.name, err, err)
			}

			stored, ferr := repo.FindByID("n1")
			if ferr != nil {
				t.Fatal("note disappeared after rejected operation")
			}
			if stored.Title != "Mine" || stored.Archived {
				t.Errorf("%s by non-owner modified the note: %+v", tt.name, stored)
			}
		})
	}
}

func TestNoteService_MissingNote(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	err := svc.Delete("user-1", "no-such-id")

	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Errorf("Delete() error = %T, want *NotFoundError", err)
	}
}

func TestNoteService_ArchiveLifecycle(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedNote(repo, "n1", "user-1", "Note", "body", false, createdAt)

	if err := svc.Archive("user-1", "n1"); err != nil {
		t.Fatalf("Archive() unexpected error = %v", err)
	}

	assertInOneList(t, svc, "user-1", "n1", true)

	if err := svc.Unarchive("user-1", "n1"); err != nil {
		t.Fatalf("Unarchive() unexpected error = %v", err)
	}

	assertInOneList(t, svc, "user-1", "n1", false)
}

// assertInOneList checks the note shows up in exactly one of the two views.
func assertInOneList(t *testing.T, svc *NoteService, ownerID, noteID string, wantArchived bool) {
	t.Helper()

	active, err := svc.List(ownerID, "")
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}
	archived, err := svc.ListArchived(ownerID)
	if err != nil {
		t.Fatalf("ListArchived() unexpected error = %v", err)
	}

	inActive := containsID(active, noteID)
	inArchived := containsID(archived, noteID)

	if inActive && inArchived {
		t.Fatal("note appears in both active and archived lists")
	}
	if wantArchived && !inArchived {
		t.Error("note missing from archived list")
	}
	if !wantArchived && !inActive {
		t.Error("note missing from active list")
	}
}

func TestNoteService_DeleteRemovesNote(t *testing.T) {
	repo := newMockNoteRepo()
	svc := NewNoteService(repo)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedNote(repo, "n1", "user-1", "Note", "body", false, createdAt)

	if err := svc.Delete("user-1", "n1"); err != nil {
		t.Fatalf("Delete() unexpected error = %v", err)
	}

	if _, err := repo.FindByID("n1"); err == nil {
		t.Error("Delete() left the note in the repository")
	}

	// A second delete has nothing to act on.
	err := svc.Delete("user-1", "n1")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Errorf("Delete() of deleted note: error = %T, want *NotFoundError", err)
	}
}

func noteIDs(notes []*domain.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func containsID(notes []*domain.Note, id string) bool {
	for _, n := range notes {
		if n.ID == id {
			return true
		}
	}
	return false
}
