/*

Integer 3D vectors

*/

package sdf

// V3i is a 3D integer vector, used for grid dimensions.
type V3i [3]int
