package dynconv

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "USER#1"},
		"sk": &types.AttributeValueMemberN{Value: "42"},
	}

	token, err := EncodeToken(lastKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, lastKey, decoded)
}

func TestToken_RoundTripPreservesAttributeTypes(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberN{Value: "9007199254740993"},
		"bin":  &types.AttributeValueMemberB{Value: []byte{1, 2, 3}},
		"flag": &types.AttributeValueMemberBOOL{Value: true},
		"none": &types.AttributeValueMemberNULL{Value: true},
		"ns":   &types.AttributeValueMemberNS{Value: []string{"1", "12345678901234567890"}},
		"list": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		"nested": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"bs": &types.AttributeValueMemberBS{Value: [][]byte{{0xff}}},
			"ss": &types.AttributeValueMemberSS{Value: []string{"a"}},
		}},
	}

	token, err := EncodeToken(lastKey)
	require.NoError(t, err)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, lastKey, decoded)
}

func TestToken_Empty(t *testing.T) {
	token, err := EncodeToken(nil)
	require.NoError(t, err)
	assert.Empty(t, token)

	key, err := DecodeToken("")
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, err := DecodeToken("not base64!")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// "[1]" em base64: JSON válido que não é objeto
	_, err = DecodeToken("WzFd")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// {"id":{"X":"1"}}: tipo de atributo desconhecido
	_, err = DecodeToken("eyJpZCI6eyJYIjoiMSJ9fQ==")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
