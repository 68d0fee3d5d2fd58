package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
)

type MessageType string

const (
	MessageTypeIndexTenant  MessageType = "INDEX_TENANT"
	MessageTypeDeleteTenant MessageType = "DELETE_TENANT"
	MessageTypeStatement    MessageType = "STATEMENT"
)

type Message struct {
	Type      MessageType    `json:"type"`
	OwnerID   string         `json:"owner_id"`
	Tenant    *domain.Tenant `json:"tenant,omitempty"`
	TenantID  string         `json:"tenant_id,omitempty"`
	Month     time.Time      `json:"month,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// SQSClient is the subset of the SQS API used by SQSService.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client            SQSClient
	indexQueueURL     string
	statementQueueURL string
}

func NewSQSService(client SQSClient, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:            client,
		indexQueueURL:     config.IndexQueueURL,
		statementQueueURL: config.StatementQueueURL,
	}
}

func (s *SQSService) SendIndexMessage(ctx context.Context, tenant *domain.Tenant) error {
	msg := Message{
		Type:      MessageTypeIndexTenant,
		OwnerID:   tenant.UserID,
		Tenant:    tenant,
		TenantID:  tenant.ID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendDeleteIndexMessage(ctx context.Context, ownerID, tenantID string) error {
	msg := Message{
		Type:      MessageTypeDeleteTenant,
		OwnerID:   ownerID,
		TenantID:  tenantID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendStatementMessage(ctx context.Context, ownerID string, month time.Time) error {
	msg := Message{
		Type:      MessageTypeStatement,
		OwnerID:   ownerID,
		Month:     month,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.statementQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
