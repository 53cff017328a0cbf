package service

import (
	"strconv"
	"strings"

	"sasanaku_backend/internals/constants"
	"sasanaku_backend/internals/features/homepage/sections/model"
	"sasanaku_backend/internals/helpers/styles"
)

/*
Operasi editing atas daftar section. Semua operasi total:
id/indeks yang tidak dikenal = no-op, bukan error (referensi basi
dari sesi editing lain harus jinak).
*/

// Reorder memindahkan elemen src → dst lalu menomori ulang SEMUA section 1..N.
// Penomoran ulang penuh menjaga invariant permutasi kontigu walau reorder berkali-kali.
func Reorder(list []model.SectionModel, src, dst int) []model.SectionModel {
	n := len(list)
	if src < 0 || src >= n || dst < 0 || dst >= n || src == dst {
		Renumber(list)
		return list
	}
	moved := list[src]
	list = append(list[:src], list[src+1:]...)
	list = append(list[:dst], append([]model.SectionModel{moved}, list[dst:]...)...)
	Renumber(list)
	return list
}

// Renumber menetapkan section_order = posisi+1 untuk seluruh list.
func Renumber(list []model.SectionModel) {
	for i := range list {
		list[i].SectionOrder = i + 1
	}
}

// ToggleActive membalik is_active satu section; urutan section lain tidak berubah.
func ToggleActive(list []model.SectionModel, id string) {
	for i := range list {
		if list[i].SectionID == id {
			list[i].SectionIsActive = !list[i].SectionIsActive
			return
		}
	}
}

// UpdateField mengganti satu atribut style pada satu section.
// Tidak ada validasi silang antar field di layer ini; nilai numerik
// rusak dianggap 0 (coerce, bukan reject).
func UpdateField(list []model.SectionModel, id, field, value string) {
	for i := range list {
		if list[i].SectionID != id {
			continue
		}
		applyField(&list[i], field, value)
		return
	}
}

func applyField(s *model.SectionModel, field, value string) {
	switch field {
	case "section_name":
		s.SectionName = value
	case "section_background_color":
		s.SectionBackgroundColor = value
	case "section_text_color":
		s.SectionTextColor = value
	case "section_border_color":
		s.SectionBorderColor = value
	case "section_border_width":
		s.SectionBorderWidth = atoiSafe(value)
	case "section_border_radius":
		s.SectionBorderRadius = atoiSafe(value)
	case "section_padding":
		// normalisasi ke shorthand kanonik (nilai rusak jadi 0, bukan ditolak)
		s.SectionPadding = styles.FormatBoxShorthand(styles.ParseBoxShorthand(value))
	case "section_margin":
		s.SectionMargin = styles.FormatBoxShorthand(styles.ParseBoxShorthand(value))
	case "section_width":
		s.SectionWidth = value
	case "section_height":
		s.SectionHeight = value
	case "section_width_unit":
		// ganti satuan = konversi nilai tersimpan, bukan reset
		s.SectionWidth = styles.ConvertDimension(s.SectionWidth, styles.Unit(value), styles.KindWidth)
	case "section_height_unit":
		s.SectionHeight = styles.ConvertDimension(s.SectionHeight, styles.Unit(value), styles.KindHeight)
	case "section_vertical_align":
		s.SectionVerticalAlign = value
	case "section_horizontal_align":
		s.SectionHorizontalAlign = value
	case "section_background_image_url":
		s.SectionBackgroundImageURL = value
	case "section_text_bg_enabled":
		s.SectionTextBgEnabled = parseBool(value)
	case "section_text_bg_color":
		// alpha channel warna jadi acuan opacity
		s.SectionTextBgColor = value
		s.SectionTextBgOpacity = styles.OpacityOf(value)
	case "section_text_bg_opacity":
		// opacity jadi acuan alpha channel warna
		s.SectionTextBgOpacity = atoiSafe(value)
		s.SectionTextBgColor = styles.RGBAWithOpacity(s.SectionTextBgColor, s.SectionTextBgOpacity)
	}
}

// SetPaletteOverride mencatat/menghapus override palette satu section.
// paletteID kosong = hapus override.
func SetPaletteOverride(list []model.SectionModel, id, paletteID string) {
	for i := range list {
		if list[i].SectionID == id {
			list[i].SectionPaletteOverride = strings.TrimSpace(paletteID)
			return
		}
	}
}

// OverrideMap menurunkan map section_id → palette_id dari kolom override.
// Map dan kolom tidak mungkin divergen karena map selalu diturunkan, tidak disimpan.
func OverrideMap(list []model.SectionModel) map[string]string {
	out := make(map[string]string, len(list))
	for i := range list {
		if ov := strings.TrimSpace(list[i].SectionPaletteOverride); ov != "" {
			out[list[i].SectionID] = ov
		}
	}
	return out
}

// DefaultSections: seed pertama kali saat tabel kosong.
func DefaultSections() []model.SectionModel {
	names := map[string]string{
		constants.SectionHero:             "Hero",
		constants.SectionWhyChoose:        "Kenapa Memilih Kami",
		constants.SectionLocation:         "Lokasi Sasana",
		constants.SectionFeaturedPrograms: "Program Unggulan",
		constants.SectionMethodology:      "Metodologi Latihan",
		constants.SectionFeaturedProducts: "Produk Unggulan",
		constants.SectionCTA:              "Ajakan Bergabung",
	}
	out := make([]model.SectionModel, 0, len(constants.KnownSectionIDs))
	for i, id := range constants.KnownSectionIDs {
		out = append(out, model.SectionModel{
			SectionID:              id,
			SectionName:            names[id],
			SectionOrder:           i + 1,
			SectionIsActive:        true,
			SectionBackgroundColor: "#ffffff",
			SectionTextColor:       "#1a1a1a",
			SectionBorderColor:     "transparent",
			SectionPadding:         "40px 20px",
			SectionMargin:          "0px",
			SectionWidth:           "100%",
			SectionHeight:          "auto",
			SectionVerticalAlign:   "middle",
			SectionHorizontalAlign: "center",
			SectionTextBgColor:     "rgba(0, 0, 0, 0.5)",
			SectionTextBgOpacity:   50,
		})
	}
	return out
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
