// Package control turns directional key input into motion of the player body.
//
// Input arrives as key events. The default discrete model applies only the
// direction of the key that was just pressed and never reacts to key release.
// The held model tracks which keys are down, recombines them every tick and
// stops the player when the last key is released.
//
// A [Controller] writes the resulting direction as a velocity: onto the
// player body itself ([Direct]) or onto a kinematic anchor that constraints
// pull the player toward ([Anchored]). Every tick the controlled velocity is
// multiplied by 1 - damping*dt so motion decays toward rest without input.
package control
