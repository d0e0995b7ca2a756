// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mathcmd provides the math command module: integer arithmetic and
// evaluation of HCL expressions.
package mathcmd
