package models

// Tag 标签，name / color / slug 均唯一
type Tag struct {
	ID    uint64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	Name  string `gorm:"column:name;type:varchar(200);not null;uniqueIndex:uk_tags_name" json:"name"`
	Color string `gorm:"column:color;type:varchar(7);not null;uniqueIndex:uk_tags_color" json:"color"`
	Slug  string `gorm:"column:slug;type:varchar(200);not null;uniqueIndex:uk_tags_slug" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}

// Ingredient 食材，(name, measurement_unit) 唯一
type Ingredient struct {
	ID              uint64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	Name            string `gorm:"column:name;type:varchar(200);not null;uniqueIndex:uk_ingredient_name_unit,priority:1" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;type:varchar(200);not null;uniqueIndex:uk_ingredient_name_unit,priority:2" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
