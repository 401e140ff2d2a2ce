package catalog

import (
	"time"

	"tripwise/internal/shared/utils/vnchar"
)

// Province is a top-level administrative region.
type Province struct {
	ID        uint      `gorm:"primaryKey;column:province_id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Province) TableName() string { return "provinces" }
func (p *Province) GetID() uint { return p.ID }
func (p *Province) SetID(id uint) { p.ID = id }
func (*Province) EntityName() string { return "Province" }
func (*Province) Normalize() {}
func (*Province) SearchColumn() string { return "name" }
func (*Province) SearchTerm(q string) string { return "%" + q + "%" }

// City belongs to a province.
type City struct {
	ID         uint      `gorm:"primaryKey;column:city_id" json:"id"`
	Name       string    `gorm:"column:name;size:255;not null" json:"name"`
	ProvinceID uint      `gorm:"column:province_id;not null;index" json:"province_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (City) TableName() string { return "cities" }
func (c *City) GetID() uint { return c.ID }
func (c *City) SetID(id uint) { c.ID = id }
func (*City) EntityName() string { return "City" }
func (*City) Normalize() {}
func (*City) SearchColumn() string { return "name" }
func (*City) SearchTerm(q string) string { return "%" + q + "%" }

// Hashtag carries a diacritic-free slug derived from the name. Search goes
// through the slug so "Đà Nẵng" and "da nang" find the same tag.
type Hashtag struct {
	ID        uint      `gorm:"primaryKey;column:hashtag_id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Slug      string    `gorm:"column:slug;size:255;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Hashtag) TableName() string { return "hashtags" }
func (h *Hashtag) GetID() uint { return h.ID }
func (h *Hashtag) SetID(id uint) { h.ID = id }
func (*Hashtag) EntityName() string { return "Hashtag" }

func (h *Hashtag) Normalize() {
	if h.Slug == "" {
		h.Slug = vnchar.Slug(h.Name)
	}
}

func (*Hashtag) SearchColumn() string { return "slug" }

func (*Hashtag) SearchTerm(q string) string { return "%" + vnchar.Slug(q) + "%" }

// Activity is a schedule activity type, also slug-keyed.
type Activity struct {
	ID        uint      `gorm:"primaryKey;column:activity_id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Slug      string    `gorm:"column:slug;size:255;not null" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Activity) TableName() string { return "activities" }
func (a *Activity) GetID() uint { return a.ID }
func (a *Activity) SetID(id uint) { a.ID = id }
func (*Activity) EntityName() string { return "Activity" }

func (a *Activity) Normalize() {
	if a.Slug == "" {
		a.Slug = vnchar.Slug(a.Name)
	}
}

func (*Activity) SearchColumn() string { return "name" }
func (*Activity) SearchTerm(q string) string { return "%" + q + "%" }

// Category is a plain named lookup.
type Category struct {
	ID        uint      `gorm:"primaryKey;column:category_id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
func (c *Category) GetID() uint { return c.ID }
func (c *Category) SetID(id uint) { c.ID = id }
func (*Category) EntityName() string { return "Category" }
func (*Category) Normalize() {}
func (*Category) SearchColumn() string { return "name" }
func (*Category) SearchTerm(q string) string { return "%" + q + "%" }

// Reaction is a plain named lookup.
type Reaction struct {
	ID        uint      `gorm:"primaryKey;column:reaction_id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reaction) TableName() string { return "reactions" }
func (r *Reaction) GetID() uint { return r.ID }
func (r *Reaction) SetID(id uint) { r.ID = id }
func (*Reaction) EntityName() string { return "Reaction" }
func (*Reaction) Normalize() {}
func (*Reaction) SearchColumn() string { return "name" }
func (*Reaction) SearchTerm(q string) string { return "%" + q + "%" }
