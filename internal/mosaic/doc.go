// Package mosaic builds photographic mosaics.
//
// A mosaic is produced in two sequential phases:
//
//  1. Ingestion: every candidate file is summarized into a Tile (a 25×25 RGB
//     thumbnail of its centered square plus the thumbnail's average color) and
//     collected into a read-only Library. Files that cannot be decoded are
//     reported as Skipped and do not stop the batch.
//
//  2. Rendering: the target image is trimmed to a multiple of the sample size
//     and divided into a grid of SampleBlocks. For each block a Matcher picks a
//     tile uniformly at random among those whose average color lies within the
//     allowable error on every channel, and the Canvas pastes it, scaled with
//     nearest-neighbor sampling, into the block's cell. Blocks without a
//     match stay black.
//
// Pipeline ties both phases to the file system: it validates the Config,
// loads the target, builds the library, renders and writes the output file.
//
// Everything in this package runs on the calling goroutine. A Library is
// never modified after it is built, and a Canvas is owned by its caller.
package mosaic
