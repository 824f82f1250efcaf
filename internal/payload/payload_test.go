package payload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/ident"
)

func testBuilder() *Builder {
	return NewBuilder(ident.New(), domain.Metadata{
		DisplayPhoneNumber: "15550000001",
		PhoneNumberID:      "100000000000001",
	})
}

func TestStatus_WireShape(t *testing.T) {
	b := testBuilder()
	at := time.Unix(1756000000, 0)

	p := b.Status("wamid.abc", domain.StatusDelivered, "5511999999999", at)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	entries := decoded["entry"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.NotEmpty(t, entry["id"])

	changes := entry["changes"].([]any)
	require.Len(t, changes, 1)
	change := changes[0].(map[string]any)
	assert.Equal(t, "messages", change["field"])

	value := change["value"].(map[string]any)
	assert.Equal(t, "whatsapp", value["messaging_product"])

	metadata := value["metadata"].(map[string]any)
	assert.Equal(t, "15550000001", metadata["display_phone_number"])
	assert.Equal(t, "100000000000001", metadata["phone_number_id"])

	// Exactly one of messages/statuses is present per change.
	_, hasMessages := value["messages"]
	assert.False(t, hasMessages)

	statuses := value["statuses"].([]any)
	require.Len(t, statuses, 1)
	status := statuses[0].(map[string]any)
	assert.Equal(t, "wamid.abc", status["id"])
	assert.Equal(t, "delivered", status["status"])
	assert.Equal(t, "1756000000", status["timestamp"])
	assert.Equal(t, "5511999999999", status["recipient_id"])
}

func TestInbound_WireShape(t *testing.T) {
	b := testBuilder()

	contact := domain.Contact{WaID: "5511988887777", Name: "Ana Silva"}
	msg := domain.InboundMessage{
		From:      contact.WaID,
		ID:        "wamid.reply",
		Timestamp: Timestamp(time.Unix(1756000000, 0)),
		Type:      domain.TypeInteractive,
		Context:   &domain.Context{ID: "wamid.original"},
		Interactive: &domain.InteractiveReply{
			Type:        "button_reply",
			ButtonReply: &domain.ReplyOption{ID: "opt_1", Title: "Confirm"},
		},
	}

	raw, err := json.Marshal(b.Inbound(contact, msg))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	value := decoded["entry"].([]any)[0].(map[string]any)["changes"].([]any)[0].(map[string]any)["value"].(map[string]any)

	_, hasStatuses := value["statuses"]
	assert.False(t, hasStatuses)

	contacts := value["contacts"].([]any)
	require.Len(t, contacts, 1)
	profile := contacts[0].(map[string]any)["profile"].(map[string]any)
	assert.Equal(t, "Ana Silva", profile["name"])
	assert.Equal(t, "5511988887777", contacts[0].(map[string]any)["wa_id"])

	messages := value["messages"].([]any)
	require.Len(t, messages, 1)
	inbound := messages[0].(map[string]any)
	assert.Equal(t, "wamid.original", inbound["context"].(map[string]any)["id"])
	assert.Equal(t, "button_reply", inbound["interactive"].(map[string]any)["type"])
}
