package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vocabachkhoa/api/internal/apperr"
	"github.com/vocabachkhoa/api/internal/entities"
	"github.com/vocabachkhoa/api/internal/vocabulary"
)

// VocabularyService defines the vocabulary operations exposed over HTTP.
type VocabularyService interface {
	Save(ctx context.Context, accountID uint, word, meanings string) (*entities.VocabularyEntry, error)
	Show(ctx context.Context, accountID uint) (*vocabulary.ShowResult, error)
	Delete(ctx context.Context, accountID uint, word string) (*vocabulary.DeleteResult, error)
}

type VocabularyController struct {
	service VocabularyService
}

func NewVocabularyController(service VocabularyService) *VocabularyController {
	return &VocabularyController{service: service}
}

type SaveWordRequest struct {
	UID      uint   `json:"UID"`
	Word     string `json:"WORD"`
	Meanings string `json:"MEANINGS"`
}

type DeleteWordRequest struct {
	UID  uint   `json:"U_ID"`
	Word string `json:"WORD"`
}

// Save stores a word for an account.
// POST /vocab/save
func (vc *VocabularyController) Save(c *gin.Context) {
	var req SaveWordRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := vc.service.Save(c.Request.Context(), req.UID, req.Word, req.Meanings)
	if err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, "word saved successfully", entry)
}

// Show lists the words of an account.
// GET /vocab/show?U_ID=
func (vc *VocabularyController) Show(c *gin.Context) {
	accountID, ok := parseQueryID(c, "U_ID")
	if !ok {
		return
	}

	result, err := vc.service.Show(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}

	respondOK(c, "vocabulary retrieved successfully", result)
}

// Delete removes a word from an account.
// DELETE /vocab/delete
func (vc *VocabularyController) Delete(c *gin.Context) {
	var req DeleteWordRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UID == 0 {
		fail(c, apperr.Validation("missing U_ID in request body"))
		return
	}
	if req.Word == "" {
		fail(c, apperr.Validation("missing WORD in request body"))
		return
	}

	result, err := vc.service.Delete(c.Request.Context(), req.UID, req.Word)
	if err != nil {
		fail(c, err)
		return
	}

	respondOK(c, result.Message, result)
}
