// Package numpress provides lossy/lossless compression for the numeric
// arrays that dominate mass-spectrometry data: m/z values, retention
// times, and ion counts/intensities.
//
// Three encodings are available, each tuned to one kind of array:
//
//   - Linear: 5-decimal fixed point with linear-prediction residuals.
//     For m/z and retention-time arrays, which grow almost linearly.
//     Lossy within ±5e-6 absolute error.
//   - Count: direct variable-length encoding of non-negative integers.
//     Lossless for ion counts up to 4294967294.
//   - TwoByteFloat: 16-bit natural-log fixed point, exactly two bytes per
//     value. For intensities, lossy within ~1/3000 relative error.
//
// # Basic Usage
//
//	mz := []float64{100.00033, 100.00040, 100.00047, 100.00053}
//	payload, err := numpress.EncodeLinear(mz)
//	if err != nil {
//	    return err
//	}
//
//	restored, err := numpress.DecodeLinear(payload)
//
// The Encode/Decode pair dispatches on a format.EncodingType selector for
// callers that store the encoding choice alongside the payload:
//
//	payload, err := numpress.Encode(format.TypeCount, counts)
//	values, err := numpress.Decode(format.TypeCount, payload)
//
// # Package Structure
//
// This package provides convenient one-shot wrappers, including the domain
// validation the raw codecs deliberately omit. For streaming writes,
// pooled-buffer reuse, or iterator-based decoding, use the encoding
// package directly. The compress package adds optional general-purpose
// compression on top of the encoded payloads.
package numpress

import (
	"bytes"
	"fmt"

	"github.com/NRTDP/ms-numpress/encoding"
	"github.com/NRTDP/ms-numpress/endian"
	"github.com/NRTDP/ms-numpress/errs"
	"github.com/NRTDP/ms-numpress/format"
)

// ValidateLinear checks that every value fits the linear codec's
// invertible fixed-point window (±encoding.LinearMaxValue). Values outside
// it would alias to other values rather than fail, so they are rejected
// here with errs.ErrFixedPointOverflow.
func ValidateLinear(values []float64) error {
	for i, v := range values {
		if v > encoding.LinearMaxValue || v < -encoding.LinearMaxValue {
			return fmt.Errorf("%w: values[%d] = %g", errs.ErrFixedPointOverflow, i, v)
		}
	}

	return nil
}

// ValidateCount checks that every value is within the count codec's
// domain [0, 4294967294].
func ValidateCount(values []float64) error {
	for i, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: values[%d] = %g", errs.ErrNegativeCount, i, v)
		}
		if v > encoding.MaxCountValue {
			return fmt.Errorf("%w: values[%d] = %g", errs.ErrCountOverflow, i, v)
		}
	}

	return nil
}

// ValidateTwoByteFloat checks that every value is strictly positive and
// inside the representable window of the 16-bit log scale.
func ValidateTwoByteFloat(values []float64) error {
	for i, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: values[%d] = %g", errs.ErrNonPositiveValue, i, v)
		}
		if v < encoding.MinTwoByteFloatValue || v > encoding.MaxTwoByteFloatValue {
			return fmt.Errorf("%w: values[%d] = %g outside log scale", errs.ErrFixedPointOverflow, i, v)
		}
	}

	return nil
}

// EncodeLinear encodes values with the linear-prediction codec.
//
// Values must satisfy ValidateLinear. The output is at most
// encoding.LinearMaxBytes(len(values)) bytes; for smooth m/z arrays it is
// typically close to one byte per value after the 8-byte header.
func EncodeLinear(values []float64) ([]byte, error) {
	if err := ValidateLinear(values); err != nil {
		return nil, err
	}

	enc := encoding.NewLinearEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()

	enc.WriteSlice(values)

	return bytes.Clone(enc.Bytes()), nil
}

// DecodeLinear decodes a payload produced by EncodeLinear. Each value is
// within ±5e-6 of the encoded original.
func DecodeLinear(data []byte) ([]float64, error) {
	return encoding.NewLinearDecoder(endian.GetLittleEndianEngine()).Decode(data)
}

// EncodeCount encodes values with the count codec.
//
// Values must satisfy ValidateCount. The output is at most
// encoding.CountMaxBytes(len(values)) bytes.
func EncodeCount(values []float64) ([]byte, error) {
	if err := ValidateCount(values); err != nil {
		return nil, err
	}

	enc := encoding.NewCountEncoder()
	defer enc.Finish()

	enc.WriteSlice(values)

	return bytes.Clone(enc.Bytes()), nil
}

// DecodeCount decodes a payload produced by EncodeCount. Round trips are
// exact for integral inputs in the count domain.
func DecodeCount(data []byte) ([]float64, error) {
	return encoding.NewCountDecoder().Decode(data)
}

// EncodeTwoByteFloat encodes values with the two-byte float codec.
//
// Values must satisfy ValidateTwoByteFloat. The output is exactly
// 2*len(values) bytes.
func EncodeTwoByteFloat(values []float64) ([]byte, error) {
	if err := ValidateTwoByteFloat(values); err != nil {
		return nil, err
	}

	enc := encoding.NewLogFloatEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()

	enc.WriteSlice(values)

	return bytes.Clone(enc.Bytes()), nil
}

// DecodeTwoByteFloat decodes a payload produced by EncodeTwoByteFloat.
// Each value is within ~1/3000 relative error of the encoded original.
func DecodeTwoByteFloat(data []byte) ([]float64, error) {
	return encoding.NewLogFloatDecoder(endian.GetLittleEndianEngine()).Decode(data)
}

// Encode dispatches to the encoder selected by t.
func Encode(t format.EncodingType, values []float64) ([]byte, error) {
	switch t {
	case format.TypeLinear:
		return EncodeLinear(values)
	case format.TypeCount:
		return EncodeCount(values)
	case format.TypeTwoByteFloat:
		return EncodeTwoByteFloat(values)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, t)
	}
}

// Decode dispatches to the decoder selected by t.
func Decode(t format.EncodingType, data []byte) ([]float64, error) {
	switch t {
	case format.TypeLinear:
		return DecodeLinear(data)
	case format.TypeCount:
		return DecodeCount(data)
	case format.TypeTwoByteFloat:
		return DecodeTwoByteFloat(data)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, t)
	}
}
