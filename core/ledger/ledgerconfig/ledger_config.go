/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerconfig

import (
	"path/filepath"

	"github.com/spf13/viper"
)

const defaultFileSystemPath = "/var/ibc-statevp"

// GetRootPath returns the filesystem path under which all ledger related
// contents are stored.
func GetRootPath() string {
	sysPath := viper.GetString("ledger.fileSystemPath")
	if sysPath == "" {
		sysPath = defaultFileSystemPath
	}
	return filepath.Join(sysPath, "ledgersData")
}

// GetIBCStateLevelDBPath returns the filesystem path that is used to
// maintain the IBC state level db.
func GetIBCStateLevelDBPath() string {
	return filepath.Join(GetRootPath(), "ibcStateLeveldb")
}
