/*
Package glide loads user interfaces for small touch displays from markup, and runs them.

Start with New to create a Glide for a Display: it holds the screen image, the
fonts and the window that is shown. LoadWindow turns markup into a Window, and
SetWindow shows it.

Markup has a Glide element holding a Window element, with the widgets as its
children:

	<Glide Version="1.0">
		<Window Name="main" Width="480" Height="272" BackColor="FFFFFF">
			<Button Name="ok" X="10" Y="10" Width="100" Height="32" Text="OK"/>
		</Window>
	</Glide>

Widgets are "UIs", after the interface UI they all implement. UIs are kept in
a Kid, that holds their position and draw state. A window has a Canvas that
places its kids at absolute positions. Use ChildByName to find the UI for a
name, and set its callbacks.

You are in charge of the main event loop, receiving touches and errors from
the g.Inputs channel, and passing them on unchanged to g.Input. All callbacks
on UIs are called from inside g.Input. From there you can safely change UIs,
no locking required. After changing a UI, call MarkDraw to have it drawn. Code
running in other goroutines can send a function on g.Call, it is run from
g.Input. After handling an input, glide draws what changed and flushes it to
the display once.

A touch gesture goes to the UI that its TouchDown hit, until the TouchUp. A
Dropdown opens a List as a popup on top of the window. While it is open, all
gestures go to the list. Dragging scrolls it, tapping a row selects it, and a
tap outside closes it.

Backends for displays are in subpackages: fbdev for a Linux framebuffer with
an evdev touchscreen, devdraw for plan9port devdraw windows, and ebitensim for
a desktop simulator.
*/
package glide
