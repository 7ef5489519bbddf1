package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/database"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/google/uuid"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment belongs to another user")
	ErrEmptyComment    = errors.New("comment content is required")
)

type CommentService struct {
	stores *store.Stores
}

func NewCommentService(stores *store.Stores) *CommentService {
	return &CommentService{stores: stores}
}

func (s *CommentService) Add(ctx context.Context, userID uint, kitID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	var comment models.Comment
	err := s.stores.Transaction(ctx, database.TxOptions{}, func(tx *store.Stores) error {
		kit, err := tx.Kits.ByID(ctx, kitID)
		if err != nil {
			return err
		}
		if kit == nil {
			return ErrKitNotFound
		}

		comment = models.Comment{Content: content, UserID: userID, UIKitID: kitID}
		if err := tx.Comments.Create(ctx, &comment); err != nil {
			return err
		}
		return notifyCreator(ctx, tx, kit, userID, models.NotifyComment, "New comment on your kit %q")
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(ctx context.Context, userID uint, commentID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	comment, err := s.stores.Comments.ByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	if err := s.stores.Comments.Update(ctx, commentID, map[string]any{"content": content}); err != nil {
		return nil, err
	}
	return s.stores.Comments.ByIDOrFail(ctx, commentID)
}

func (s *CommentService) Delete(ctx context.Context, userID uint, isAdmin bool, commentID uuid.UUID) error {
	comment, err := s.stores.Comments.ByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return ErrNotCommentOwner
	}
	return s.stores.Comments.Delete(ctx, commentID)
}
