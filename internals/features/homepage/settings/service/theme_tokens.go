package service

import (
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	"sasanaku_backend/internals/features/homepage/settings/model"
)

// BuildThemeTokens menurunkan map variabel style dari settings + palette yang
// sudah diresolusi. Fungsi murni: pemanggil (endpoint publik) yang menempelkan
// hasilnya ke document root, tidak ada mutasi state global di sisi sini.
func BuildThemeTokens(st model.HomepageSettingsModel, p *paletteService.Palette) map[string]string {
	if p == nil {
		p = paletteService.GetPaletteByID(paletteService.DefaultPaletteID, nil)
	}
	sw := paletteService.SwatchAt(p, 0)

	border := sw.Border
	if border == "" {
		border = "transparent"
	}

	mode := st.SettingsColorMode
	if mode == "" {
		mode = model.ColorModeUniform
	}

	return map[string]string{
		"--site-bg":     sw.Background,
		"--site-text":   sw.Text,
		"--site-accent": sw.Accent,
		"--site-border": border,
		"--palette-id":  p.PaletteID,
		"--color-mode":  mode,
	}
}
