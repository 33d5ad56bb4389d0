package messages

import (
	"errors"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/application/messages"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Devices *device.Manager
}

type SendRequest struct {
	ConversationID string `json:"conversationId"`
	ReceiverID     string `json:"receiverId"`
	CarID          string `json:"carId"`
	Content        string `json:"content"`
}

type Thread struct {
	Conversation domain.Conversation `json:"conversation"`
	Messages     []domain.Message    `json:"messages"`
}

type unreadMeta struct {
	Total       int `json:"total"`
	UnreadCount int `json:"unreadCount"`
}

func (h *Handlers) inbox(c *fiber.Ctx) (*messages.Inbox, error) {
	return h.Devices.Messages(c.UserContext(), middleware.DeviceID(c))
}

func messageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, messages.ErrConversationNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, messages.ErrContentRequired),
		errors.Is(err, messages.ErrReceiverRequired),
		errors.Is(err, messages.ErrSameParticipant),
		errors.Is(err, messages.ErrNotParticipant):
		return response.BadRequest(c, err.Error())
	default:
		return err
	}
}

// GET /api/v1/messages/conversations?with=<participant>
func (h *Handlers) Conversations(c *fiber.Ctx) error {
	in, err := h.inbox(c)
	if err != nil {
		return err
	}
	convs := in.Conversations()
	if with := c.Query("with"); with != "" {
		convs = convs[:0]
		if conv, ok := in.ConversationWith(messages.Self, with); ok {
			convs = append(convs, conv)
		}
	}
	return response.Success(c, "Conversations fetched successfully", convs,
		unreadMeta{Total: len(convs), UnreadCount: in.UnreadCount()})
}

// GET /api/v1/messages/conversations/:id
func (h *Handlers) Thread(c *fiber.Ctx) error {
	in, err := h.inbox(c)
	if err != nil {
		return err
	}
	conv, err := in.Conversation(c.Params("id"))
	if err != nil {
		return messageError(c, err)
	}
	msgs, err := in.Messages(conv.ID)
	if err != nil {
		return messageError(c, err)
	}
	return response.Success(c, "Conversation fetched successfully", Thread{Conversation: conv, Messages: msgs}, response.Count(len(msgs)))
}

// POST /api/v1/messages: sent by the device's own user
func (h *Handlers) Send(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	in, err := h.inbox(c)
	if err != nil {
		return err
	}
	convID, msg, err := in.Send(messages.NewMessage{
		ReceiverID: req.ReceiverID,
		CarID:      req.CarID,
		Content:    req.Content,
	}, req.ConversationID)
	if err != nil {
		return messageError(c, err)
	}
	return response.SuccessCreated(c, "Message sent successfully", msg, fiber.Map{"conversationId": convID})
}

// POST /api/v1/messages/conversations/:id/read
func (h *Handlers) MarkRead(c *fiber.Ctx) error {
	in, err := h.inbox(c)
	if err != nil {
		return err
	}
	conv, err := in.MarkRead(c.Params("id"))
	if err != nil {
		return messageError(c, err)
	}
	return response.Success(c, "Conversation marked as read", conv, fiber.Map{"unreadCount": in.UnreadCount()})
}

// GET /api/v1/messages/unread
func (h *Handlers) Unread(c *fiber.Ctx) error {
	in, err := h.inbox(c)
	if err != nil {
		return err
	}
	return response.Success(c, "Unread count fetched successfully", fiber.Map{"unreadCount": in.UnreadCount()}, nil)
}
