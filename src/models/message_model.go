package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sender       primitive.ObjectID `json:"sender" bson:"sender"`
	Receiver     primitive.ObjectID `json:"receiver" bson:"receiver"`
	SenderRole   Role               `json:"senderRole" bson:"senderRole"`
	ReceiverRole Role               `json:"receiverRole" bson:"receiverRole"`
	Content      string             `json:"content" bson:"content"`
	MessageType  MessageType        `json:"messageType" bson:"messageType"` // text, file, image
	FileUrl      string             `json:"fileUrl" bson:"fileUrl"`
	IsRead       bool               `json:"isRead" bson:"isRead"`
	ReadAt       *time.Time         `json:"readAt,omitempty" bson:"readAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeFile  MessageType = "file"
	MessageTypeImage MessageType = "image"
)
