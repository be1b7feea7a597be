// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package recommend implements the plant recommendation pipeline: hard
// filtering, graceful constraint relaxation, weighted multi-factor
// scoring, deterministic ranking with identity dedup, diversity-capped
// selection and output assembly with synthesized justifications.
//
// The pipeline is synchronous and side-effect free. Data flows strictly
// through the stages; no stage holds mutable state across calls. The
// package depends only on the sibling input-type packages (plant, profile,
// environment) and never performs I/O.
package recommend
