package discussions

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscussionRepository struct{}

// messageRow joins a message with its author's username.
type messageRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Message   string
	CreatedAt time.Time
}

func (r *DiscussionRepository) Create(message *DiscussionMessage) error {
	return storage.GetDb().Create(message).Error
}

func (r *DiscussionRepository) GetByID(messageID uuid.UUID) (*DiscussionMessage, error) {
	var message DiscussionMessage

	err := storage.GetDb().Where("id = ?", messageID).First(&message).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &message, nil
}

func (r *DiscussionRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*messageRow, error) {
	var rows []*messageRow

	err := storage.GetDb().
		Table("discussion_messages").
		Select(
			"discussion_messages.id, discussion_messages.user_id, " +
				"users.username, discussion_messages.message, " +
				"discussion_messages.created_at",
		).
		Joins("JOIN users ON users.id = discussion_messages.user_id").
		Where("discussion_messages.workspace_id = ?", workspaceID).
		Order("discussion_messages.created_at DESC").
		Find(&rows).Error

	return rows, err
}

func (r *DiscussionRepository) Delete(messageID uuid.UUID) error {
	return storage.GetDb().Delete(&DiscussionMessage{}, messageID).Error
}

func (r *DiscussionRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&DiscussionMessage{}).Error
}
