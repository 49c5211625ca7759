/*
Powcheck verifies the proof of work of a single block header.

Given the six header fields it reconstructs the canonical 80-byte header,
double hashes it with sha256, decodes the compact difficulty target and
reports whether the hash falls strictly below the target, along with the
serialized header, hash and target as hex strings.

Usage:

	powcheck [OPTIONS]

For an up-to-date help message:

	powcheck --help

With --mine, powcheck instead searches the 32-bit nonce space for a nonce
that satisfies the target. The search can be interrupted with SIGINT or
SIGTERM at any point.
*/
package main
