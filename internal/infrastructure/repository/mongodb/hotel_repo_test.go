package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

func TestBuildHotelFilter_Empty(t *testing.T) {
	filter := buildHotelFilter(&contract.HotelFilterOptions{})
	assert.Empty(t, filter)
}

func TestBuildHotelFilter_ScopeStatusAndRating(t *testing.T) {
	creatorID := "m1"
	status := entity.HotelStatusOnline
	starRating := 4

	filter := buildHotelFilter(&contract.HotelFilterOptions{
		CreatorID:  &creatorID,
		Status:     &status,
		StarRating: &starRating,
	})

	assert.Equal(t, "m1", filter["creator_id"])
	assert.Equal(t, entity.HotelStatusOnline, filter["status"])
	assert.Equal(t, 4, filter["star_rating"])
	assert.NotContains(t, filter, "$or")
}

func TestBuildHotelFilter_KeywordSearchesNameAndAddress(t *testing.T) {
	filter := buildHotelFilter(&contract.HotelFilterOptions{Keyword: "hyat"})

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	var fields []string
	for _, clause := range or {
		for field, value := range clause.(bson.M) {
			fields = append(fields, field)
			rx, ok := value.(primitive.Regex)
			assert.True(t, ok)
			assert.Equal(t, "hyat", rx.Pattern)
			assert.Equal(t, "i", rx.Options)
		}
	}
	assert.ElementsMatch(t, []string{"name", "name_en", "address"}, fields)
}

func TestBuildHotelFilter_KeywordMetacharactersQuoted(t *testing.T) {
	filter := buildHotelFilter(&contract.HotelFilterOptions{Keyword: "b+b (annex)"})

	or := filter["$or"].(bson.A)
	rx := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `b\+b \(annex\)`, rx.Pattern)
}
