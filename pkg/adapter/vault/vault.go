// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vault persists small named client-state items in a local
// SQLite database file, standing in for the browser localStorage of
// the original web client. It reifies the gateway.Vault port with a
// single key/value table; there is no schema versioning beyond the
// automigrated table itself.
package vault

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// item is one persisted key/value row.
type item struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// TableName fixes the table name independently of the gorm pluralized
// default.
func (item) TableName() string {
	return "vault_items"
}

// Vault is a SQLite-backed gateway.Vault realization.
type Vault struct {
	db *gorm.DB
}

var _ gateway.Vault = (*Vault)(nil)

// Open opens (and creates, if needed) the vault database at path and
// migrates its table. The gorm logger is silenced as vault queries are
// not interesting enough for user-facing output; failures still reach
// the caller as errors.
func Open(path string) (*Vault, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening vault db %q: %w", path, err)
	}
	if err := db.AutoMigrate(&item{}); err != nil {
		return nil, fmt.Errorf("migrating vault table: %w", err)
	}
	return &Vault{db: db}, nil
}

// Get loads the value of key, reporting its presence separately so an
// absent key can be told apart from an empty stored value.
func (v *Vault) Get(key string) (string, bool, error) {
	it := &item{}
	err := v.db.First(it, "key = ?", key).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("reading vault key %q: %w", key, err)
	}
	return it.Value, true, nil
}

// Put stores value under key, replacing any previous value.
func (v *Vault) Put(key, value string) error {
	err := v.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&item{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("writing vault key %q: %w", key, err)
	}
	return nil
}

// Delete removes all given keys; absent keys are not an error.
func (v *Vault) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := v.db.Delete(&item{}, "key IN ?", keys).Error
	if err != nil {
		return fmt.Errorf("deleting vault keys %v: %w", keys, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (v *Vault) Close() error {
	db, err := v.db.DB()
	if err != nil {
		return fmt.Errorf("resolving vault db handle: %w", err)
	}
	return db.Close()
}
