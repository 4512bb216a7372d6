package scene

// surfaceVert transforms the textured, lit globe surface.
const surfaceVert = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vUV = aUV;
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const surfaceFrag = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uSurface;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	vec3 tex = texture(uSurface, vUV).rgb;
	FragColor = vec4(tex * (0.25 + 0.75 * diffuse), 1.0);
}
`

// flatVert draws pins, the route line and the craft in a solid color.
const flatVert = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const flatFrag = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`
