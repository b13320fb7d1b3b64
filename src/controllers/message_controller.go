package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

const messagePageLimit = 100

// GetMessages returns up to 100 messages between the caller and another
// user, oldest first. Requires an accepted connection between the two;
// mentor messaging has no connection path and is rejected.
func GetMessages(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	otherUserID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	var gate bson.M
	switch principal.Role {
	case models.RoleStudent:
		gate = bson.M{"student": principal.ID, "recruiter": otherUserID}
	case models.RoleRecruiter:
		gate = bson.M{"recruiter": principal.ID, "student": otherUserID}
	default:
		return lib.FailWith(c, lib.ErrForbidden)
	}
	gate["status"] = models.ConnectionStatusAccepted

	err = lib.DB.Collection("connections").FindOne(c.Context(), gate).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return lib.FailWith(c, lib.ErrForbidden)
		}
		lib.Logger.Error().Err(err).Msg("Connection gate error")
		return lib.FailWith(c, err)
	}

	filter := bson.M{"$or": []bson.M{
		{"sender": principal.ID, "receiver": otherUserID},
		{"sender": otherUserID, "receiver": principal.ID},
	}}
	opts := options.Find().
		SetSort(bson.M{"createdAt": 1}).
		SetLimit(messagePageLimit)

	cursor, err := lib.DB.Collection("messages").Find(c.Context(), filter, opts)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Get messages error")
		return lib.FailWith(c, err)
	}
	defer cursor.Close(c.Context())

	messages := []models.Message{}
	if err := cursor.All(c.Context(), &messages); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode messages error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// MarkMessagesRead bulk-marks everything the other user sent to the caller
// as read. Safe to call repeatedly; read messages are never unread.
func MarkMessagesRead(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	otherUserID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	_, err = lib.DB.Collection("messages").UpdateMany(c.Context(),
		bson.M{
			"sender":   otherUserID,
			"receiver": principal.ID,
			"isRead":   false,
		},
		bson.M{"$set": bson.M{
			"isRead": true,
			"readAt": time.Now(),
		}},
	)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Mark read error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Messages marked as read"))
}

// GetUnreadCount returns the number of unread messages addressed to the
// caller.
func GetUnreadCount(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	count, err := lib.DB.Collection("messages").CountDocuments(c.Context(), bson.M{
		"receiver": principal.ID,
		"isRead":   false,
	})
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Unread count error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}
