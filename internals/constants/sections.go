package constants

// ID section homepage yang dikenal renderer preview.
const (
	SectionHero             = "hero"
	SectionWhyChoose        = "why_choose"
	SectionLocation         = "location"
	SectionFeaturedPrograms = "featured_programs"
	SectionMethodology      = "methodology"
	SectionFeaturedProducts = "featured_products"
	SectionCTA              = "cta"
)

// KnownSectionIDs: urutan default saat seeding pertama kali.
var KnownSectionIDs = []string{
	SectionHero,
	SectionWhyChoose,
	SectionLocation,
	SectionFeaturedPrograms,
	SectionMethodology,
	SectionFeaturedProducts,
	SectionCTA,
}

// Interval auto-advance slide hero (ms) saat slide > 1.
const HeroAutoAdvanceMs = 3000
