// Package crypto defines the vocabulary shared by the AES cipher sessions:
// mechanisms, directions, mode parameters, the error taxonomy and the
// session and processor contracts.
package crypto
