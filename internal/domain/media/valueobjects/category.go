package valueobjects

import "fmt"

// Category classifies a media item for placement on the published profile.
type Category string

const (
	CategoryLogo        Category = "logo"
	CategoryPhoto       Category = "photo"
	CategoryEyesContent Category = "eyes-content"
)

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid media category: %s", s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryLogo, CategoryPhoto, CategoryEyesContent:
		return true
	}
	return false
}
