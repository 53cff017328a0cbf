package dto

// RenderTree adalah payload preview homepage yang siap dirender frontend:
// urutan, style hasil resolve palette, dan konten (atau placeholder) per section.
type RenderTree struct {
	Zoom      float64       `json:"zoom"`
	ColorMode string        `json:"color_mode"`
	PaletteID string        `json:"palette_id"`
	Sections  []SectionNode `json:"sections"`
}

type SectionNode struct {
	SectionID   string         `json:"section_id"`
	SectionName string         `json:"section_name"`
	Order       int            `json:"order"`
	IsActive    bool           `json:"is_active"`
	PaletteID   string         `json:"palette_id"`
	SwatchIndex int            `json:"swatch_index"`
	Style       ContainerStyle `json:"style"`
	Content     map[string]any `json:"content"`
	Placeholder bool           `json:"placeholder"`
}

// ContainerStyle setara inline style container section di frontend.
// Align disimpan sebagai keyword flexbox, bukan nama axis mentah.
type ContainerStyle struct {
	BackgroundColor    string `json:"background_color"`
	BackgroundImageURL string `json:"background_image_url,omitempty"`
	TextColor          string `json:"text_color"`
	BorderColor        string `json:"border_color"`
	BorderWidth        string `json:"border_width"`
	BorderRadius       string `json:"border_radius"`
	Padding            string `json:"padding"`
	Margin             string `json:"margin"`
	Width              string `json:"width"`
	Height             string `json:"height"`
	AlignItems         string `json:"align_items"`
	JustifyContent     string `json:"justify_content"`
	TextBgColor        string `json:"text_bg_color,omitempty"`
}
