package service

import (
	"strings"

	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
)

// EffectivePaletteID menentukan palette efektif satu section lewat rantai
// override tiga tingkat: component → page → global → default.
// String kosong diperlakukan "tidak diset", sama seperti tidak ada entry.
//
// Entry di overrides adalah sumber kebenaran override component-level;
// kolom override section diturunkan ke map itu oleh layer section
// (lihat service.OverrideMap), jadi keduanya tidak bisa divergen.
func EffectivePaletteID(s sectionModel.SectionModel, overrides map[string]string, pagePaletteID, globalPaletteID string) string {
	if strings.TrimSpace(s.SectionPaletteOverride) != "" {
		if ov, ok := overrides[s.SectionID]; ok && strings.TrimSpace(ov) != "" {
			return ov
		}
	}
	if strings.TrimSpace(pagePaletteID) != "" {
		return pagePaletteID
	}
	if strings.TrimSpace(globalPaletteID) != "" {
		return globalPaletteID
	}
	return DefaultPaletteID
}
