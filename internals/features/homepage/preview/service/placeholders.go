package service

import "sasanaku_backend/internals/constants"

// Placeholder per section supaya preview tidak pernah kosong.
// Dipakai saat tabel konten belum ada, query gagal, atau datanya kosong.
func placeholderContent(sectionID string) map[string]any {
	switch sectionID {
	case constants.SectionHero:
		return map[string]any{
			"slides": []map[string]any{
				{
					"slide_title":    "Selamat Datang di Sasana Kami",
					"slide_subtitle": "Latihan pencak silat untuk semua usia dan tingkatan",
					"slide_cta_label": "Daftar Sekarang",
				},
			},
			"auto_advance_ms": 0,
			"dot_count":       1,
		}
	case constants.SectionWhyChoose:
		return map[string]any{
			"cards": []map[string]any{
				{"card_title": "Pelatih Bersertifikat", "card_description": "Dibimbing pelatih berpengalaman nasional"},
				{"card_title": "Jadwal Fleksibel", "card_description": "Kelas pagi, sore, dan akhir pekan"},
				{"card_title": "Komunitas Solid", "card_description": "Keluarga besar yang saling mendukung"},
			},
		}
	case constants.SectionLocation:
		return map[string]any{
			"address": "Alamat sasana belum diisi",
			"phone":   "",
			"open_hours": map[string]string{
				"senin-jumat": "16.00-21.00",
				"sabtu":       "08.00-12.00",
			},
		}
	case constants.SectionFeaturedPrograms:
		return map[string]any{
			"programs": []map[string]any{
				{"program_name": "Kelas Pemula", "program_level": "pemula"},
				{"program_name": "Kelas Prestasi", "program_level": "lanjutan"},
			},
		}
	case constants.SectionMethodology:
		return map[string]any{
			"items": []map[string]any{
				{"item_title": "Dasar & Kuda-kuda", "item_order": 1},
				{"item_title": "Jurus & Teknik", "item_order": 2},
				{"item_title": "Tanding & Prestasi", "item_order": 3},
			},
		}
	case constants.SectionFeaturedProducts:
		return map[string]any{
			"products": []map[string]any{
				{"product_name": "Seragam Latihan", "product_price_idr": 250000},
				{"product_name": "Body Protector", "product_price_idr": 450000},
			},
		}
	case constants.SectionCTA:
		return map[string]any{
			"heading":      "Siap Mulai Berlatih?",
			"subheading":   "Daftar kelas percobaan gratis minggu ini",
			"button_label": "Hubungi Kami",
		}
	default:
		return map[string]any{"note": "Konten belum dikonfigurasi"}
	}
}
