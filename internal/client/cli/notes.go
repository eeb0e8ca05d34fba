package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/common"
)

func (a *App) Notes(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return common.ValidationError("usage: notes <match_id>")
	}
	return a.showNotes(ctx, args[0])
}

func (a *App) showNotes(ctx context.Context, matchID string) error {
	notes, err := a.api.ListNotes(ctx, matchID)
	if err != nil {
		return err
	}
	a.setNotes(matchID, notes)
	renderNotes(a.out, notes)
	return nil
}

// AddNote reads a multi-line note and attaches it to a match. Blank text is
// rejected without contacting the backend and leaves the notes list as is.
func (a *App) AddNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return common.ValidationError("usage: addnote <match_id>")
	}
	matchID := args[0]

	text, err := getMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		return err
	}

	n, err := a.api.CreateNote(ctx, matchID, text)
	if err != nil {
		return err
	}

	notes := append(append([]models.Note(nil), a.cachedNotes(matchID)...), *n)
	a.setNotes(matchID, notes)
	fmt.Fprintf(a.out, "Note %s added\n", n.ID)
	return nil
}

func (a *App) EditNote(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return common.ValidationError("usage: editnote <match_id> <note_id>")
	}
	matchID, noteID := args[0], args[1]

	text, err := getMultiline(a.reader, "Enter new note text", a.out)
	if err != nil {
		return err
	}

	n, err := a.api.UpdateNote(ctx, noteID, text)
	if err != nil {
		return err
	}

	cached := a.cachedNotes(matchID)
	notes := make([]models.Note, len(cached))
	copy(notes, cached)
	for i := range notes {
		if notes[i].ID == noteID {
			notes[i] = *n
		}
	}
	a.setNotes(matchID, notes)
	fmt.Fprintf(a.out, "Note %s updated\n", n.ID)
	return nil
}

// DelNote deletes a note and drops it from the match's notes list. Deleting
// a note that is already gone succeeds and leaves the list unchanged.
func (a *App) DelNote(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return common.ValidationError("usage: delnote <match_id> <note_id>")
	}
	matchID, noteID := args[0], args[1]

	if err := a.api.DeleteNote(ctx, noteID); err != nil {
		return err
	}

	a.setNotes(matchID, models.RemoveNote(a.cachedNotes(matchID), noteID))
	fmt.Fprintf(a.out, "Note %s deleted\n", noteID)
	return nil
}
