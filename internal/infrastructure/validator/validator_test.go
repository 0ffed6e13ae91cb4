package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

func validEvent() *entity.Event {
	return &entity.Event{
		Image:       "https://example.com/a.jpg",
		Title:       "社區二手市集",
		Date:        "2026-09-01",
		Address:     "台北市中正區",
		Category:    []string{"兒童", "其他"},
		Organizer:   "小草協會",
		Description: "歡迎參加",
		UserID:      primitive.NewObjectID(),
	}
}

func TestStruct_ValidEvent(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(validEvent()))
}

func TestStruct_UnknownEventCategory(t *testing.T) {
	v := NewValidator()
	ev := validEvent()
	ev.Category = []string{"兒童", "運動"}

	err := v.Struct(ev)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "category")
}

func TestStruct_MissingTitleReportsBsonFieldName(t *testing.T) {
	v := NewValidator()
	ev := validEvent()
	ev.Title = ""

	err := v.Struct(ev)
	assert.Error(t, err)
	assert.Contains(t, apperr.MessageOf(err), `"title"`)
}

func TestStruct_MaterialTypeAndCategory(t *testing.T) {
	v := NewValidator()
	m := &entity.Material{
		Image:       "https://example.com/b.jpg",
		Name:        "冬季外套",
		Quantity:    3,
		Category:    "服飾配件",
		Description: "九成新",
		Organizer:   "小草協會",
		Type:        entity.MaterialTypeShare,
		UserID:      primitive.NewObjectID(),
	}
	assert.NoError(t, v.Struct(m))

	m.Type = "trade"
	err := v.Struct(m)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	m.Type = entity.MaterialTypeFind
	m.Category = "玩具"
	err = v.Struct(m)
	assert.Error(t, err)
	assert.Contains(t, apperr.MessageOf(err), `"category"`)
}

func TestStruct_DonationQuantity(t *testing.T) {
	v := NewValidator()
	d := entity.Donation{Donator: "王小明", Quantity: 0, Phone: "0912345678"}
	err := v.Struct(d)
	assert.Error(t, err)
	assert.Contains(t, apperr.MessageOf(err), `"quantity"`)
}
