// Package seed loads the development fixtures: master data, demo users and a
// small IP-merchandise catalog. The store is memory-only, so every process
// start begins from these fixtures.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// DemoPassword is the password for all seeded demo users.
const DemoPassword = "password123"

// Load populates an empty store with the demo fixtures.
func Load(st *store.Store) error {
	masters := map[string][]string{
		model.MasterCategory:        {"Acrylic Stands", "Plush Toys", "Figures", "Stationery"},
		model.MasterStorageLocation: {"Shelf A-1", "Shelf B-2", "Warehouse 1", "Backroom"},
		model.MasterLicensor:        {"Starlight Animation", "Nebula Comics"},
		model.MasterLicensee:        {"Hoshi Merch Co.", "Luna Goods Ltd."},
		model.MasterManufacturer:    {"Sakura Factory", "Orion Plastics"},
	}
	ids := make(map[string]string) // "kind/name" -> id
	for kind, names := range masters {
		for _, name := range names {
			rec, err := st.CreateMaster(model.MasterRecord{Kind: kind, Name: name})
			if err != nil {
				return fmt.Errorf("seed master %s/%s: %w", kind, name, err)
			}
			ids[kind+"/"+name] = rec.ID
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), 12)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	users := []model.User{
		{Username: "admin", Name: "Admin Demo", Email: "admin@example.com", Role: model.RoleAdmin},
		{Username: "manager", Name: "Manager Demo", Email: "manager@example.com", Role: model.RoleManager},
		{Username: "staff", Name: "Staff Demo", Email: "staff@example.com", Role: model.RoleStaff},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		if _, err := st.CreateUser(u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	endingSoon := time.Now().AddDate(0, 0, 12)
	farOut := time.Now().AddDate(1, 0, 0)
	products := []model.Product{
		{
			ID: "1", Sku: "AST-0001", Name: "Hero Acrylic Stand",
			CategoryID: ids["category/Acrylic Stands"], CategoryName: "Acrylic Stands",
			StorageLocationID: ids["location/Shelf A-1"], StorageLocation: "Shelf A-1",
			Price:          decimal.NewFromInt(1500),
			StockBreakdown: model.StockBreakdown{New: 24, Used: 2, Damaged: 1},
			MinStock:       10,
			IPInfo: &model.IPInfo{
				LicensorID: ids["licensor/Starlight Animation"], LicensorName: "Starlight Animation",
				LicenseeID: ids["licensee/Hoshi Merch Co."], LicenseeName: "Hoshi Merch Co.",
				ManufacturerID: ids["manufacturer/Sakura Factory"], ManufacturerName: "Sakura Factory",
				SalesEndDate: &farOut,
			},
			CreatedBy: "admin",
		},
		{
			ID: "2", Sku: "PLU-0002", Name: "Mascot Plush (Small)",
			CategoryID: ids["category/Plush Toys"], CategoryName: "Plush Toys",
			StorageLocationID: ids["location/Shelf B-2"], StorageLocation: "Shelf B-2",
			Price:          decimal.NewFromInt(2800),
			StockBreakdown: model.StockBreakdown{New: 8},
			MinStock:       10,
			IPInfo: &model.IPInfo{
				LicensorID: ids["licensor/Nebula Comics"], LicensorName: "Nebula Comics",
				SalesEndDate: &endingSoon,
			},
			CreatedBy: "admin",
		},
		{
			ID: "3", Sku: "FIG-0003", Name: "1/7 Scale Figure",
			CategoryID: ids["category/Figures"], CategoryName: "Figures",
			StorageLocationID: ids["location/Warehouse 1"], StorageLocation: "Warehouse 1",
			Price:          decimal.NewFromInt(18700),
			StockBreakdown: model.StockBreakdown{New: 3, Damaged: 1},
			MinStock:       5,
			CreatedBy:      "admin",
		},
		{
			ID: "4", Sku: "STA-0004", Name: "Character Ballpoint Pen",
			CategoryID: ids["category/Stationery"], CategoryName: "Stationery",
			StorageLocationID: ids["location/Backroom"], StorageLocation: "Backroom",
			Price:     decimal.NewFromInt(450),
			MinStock:  20,
			CreatedBy: "admin",
		},
	}
	for _, p := range products {
		if _, err := st.CreateProduct(p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Sku, err)
		}
	}
	return nil
}
