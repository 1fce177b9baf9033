package main

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/config"
	"github.com/ngomna/cms/internal/db"
)

// Seeds the database with the bilingual demo content of the public
// site. Idempotent: existing rows are left alone, tables are never
// dropped.
func main() {
	cfg := config.Load()

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := seed(gdb); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	log.Println("seed complete")
}

func seed(gdb *gorm.DB) error {
	home, err := ensurePage(gdb, db.Page{
		Name:      "Home",
		Slug:      "home",
		URL:       "/",
		PageType:  db.PageTypeHome,
		Published: true,
		MetaTitle: "nGomna - Government services in your pocket",
	})
	if err != nil {
		return err
	}

	hero, err := ensureSection(gdb, home.ID, db.Section{
		Name:        "Hero",
		SectionType: db.SectionTypeHero,
		Order:       1,
		Published:   true,
		Title:       "Government services in your pocket",
		TitleFr:     "Les services gouvernementaux dans votre poche",
		Subtitle:    "Download payslips, receive notifications and more",
		SubtitleFr:  "Téléchargez vos bulletins de paie, recevez des notifications et plus",
	})
	if err != nil {
		return err
	}

	features, err := ensureSection(gdb, home.ID, db.Section{
		Name:        "Why choose nGomna",
		SectionType: db.SectionTypeWhyChoose,
		Order:       2,
		Published:   true,
		Title:       "Why choose nGomna",
		TitleFr:     "Pourquoi choisir nGomna",
	})
	if err != nil {
		return err
	}

	if err := ensureFeature(gdb, features.ID, db.Feature{
		Title:         "Secure",
		TitleFr:       "Sécurisé",
		Description:   "Your identity and data are protected end to end",
		DescriptionFr: "Votre identité et vos données sont protégées de bout en bout",
		Icon:          "Shield",
		Color:         "from-green-500 to-green-600",
		Order:         1,
		Published:     true,
	}); err != nil {
		return err
	}
	if err := ensureFeature(gdb, features.ID, db.Feature{
		Title:         "Fast payslips",
		TitleFr:       "Bulletins rapides",
		Description:   "Download your payslip the moment it is issued",
		DescriptionFr: "Téléchargez votre bulletin dès sa publication",
		Icon:          "Zap",
		Color:         "from-yellow-400 to-yellow-500",
		Order:         2,
		Published:     true,
	}); err != nil {
		return err
	}

	if err := ensureContent(gdb, hero.ID, db.Content{
		Title:       "Welcome",
		TitleFr:     "Bienvenue",
		Content:     "nGomna brings public servants and citizens closer to government services.",
		ContentFr:   "nGomna rapproche les fonctionnaires et les citoyens des services gouvernementaux.",
		ContentType: db.ContentTypeText,
		Order:       1,
		Published:   true,
	}); err != nil {
		return err
	}

	if err := ensureMenu(gdb, db.Menu{
		Title:     "Main navigation",
		MenuType:  db.MenuTypeHeader,
		Published: true,
	}); err != nil {
		return err
	}

	return ensureFAQ(gdb, db.FAQ{
		Question:   "How do I download my payslip?",
		QuestionFr: "Comment télécharger mon bulletin de paie ?",
		Answer:     "Open the payslips tab and pick a month.",
		AnswerFr:   "Ouvrez l'onglet bulletins et choisissez un mois.",
		Order:      1,
		Published:  true,
	})
}

func ensurePage(gdb *gorm.DB, page db.Page) (*db.Page, error) {
	var existing db.Page
	err := gdb.Where("slug = ?", page.Slug).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := gdb.Create(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func ensureSection(gdb *gorm.DB, pageID uint, section db.Section) (*db.Section, error) {
	section.PageID = pageID
	var existing db.Section
	err := gdb.Where("page_id = ? AND name = ?", pageID, section.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := gdb.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func ensureContent(gdb *gorm.DB, sectionID uint, block db.Content) error {
	block.SectionID = sectionID
	var existing db.Content
	err := gdb.Where("section_id = ? AND title = ?", sectionID, block.Title).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(&block).Error
}

func ensureFeature(gdb *gorm.DB, sectionID uint, feature db.Feature) error {
	feature.SectionID = sectionID
	var existing db.Feature
	err := gdb.Where("section_id = ? AND title = ?", sectionID, feature.Title).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(&feature).Error
}

func ensureMenu(gdb *gorm.DB, menu db.Menu) error {
	var existing db.Menu
	err := gdb.Where("title = ?", menu.Title).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(&menu).Error
}

func ensureFAQ(gdb *gorm.DB, faq db.FAQ) error {
	var existing db.FAQ
	err := gdb.Where("question = ?", faq.Question).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(&faq).Error
}
